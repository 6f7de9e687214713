package stonks

import (
	"fmt"
	"iter"

	"github.com/etnz/stonks/date"
	"github.com/shopspring/decimal"
)

// Day is a dated set of quotes.
type Day struct {
	Date   date.Date
	Prices Prices
}

// ReplayHistory replays a fixed table of days. It is finite.
type ReplayHistory struct {
	days date.History[Prices]
}

// NewReplayHistory returns a history replaying days.
//
// Days must be given in strictly increasing date order with valid quotes.
func NewReplayHistory(days ...Day) (*ReplayHistory, error) {
	h := new(ReplayHistory)
	for i, d := range days {
		if d.Prices.IsZero() {
			return nil, fmt.Errorf("day %v: %w", d.Date, ErrInvalidPrice)
		}
		if i > 0 && !d.Date.After(days[i-1].Date) {
			return nil, fmt.Errorf("day %v is not after %v: days must be strictly increasing", d.Date, days[i-1].Date)
		}
		h.days.Append(d.Date, d.Prices)
	}
	return h, nil
}

// Len returns the number of days in the table.
func (h *ReplayHistory) Len() int { return h.days.Len() }

// Period returns the first and the last day of the table, zero dates if it is empty.
func (h *ReplayHistory) Period() (first, last date.Date) {
	first, _ = h.days.First()
	last, _ = h.days.Latest()
	return first, last
}

// Days implements History.
func (h *ReplayHistory) Days() iter.Seq2[date.Date, Prices] { return h.days.Values() }

// realQuotes is the recorded market table replayed by RealHistory.
var realQuotes = []struct {
	on         string
	lkoh, sber int64
}{
	{"2023-09-10", 6669, 255},
	{"2023-09-11", 6456, 256},
	{"2023-09-12", 6729, 262},
	{"2023-09-13", 6610, 258},
	{"2023-09-14", 6519, 260},
	{"2023-09-15", 6553, 260},
	{"2023-09-16", 6527, 260},
	{"2023-09-17", 6566, 263},
}

// RealHistory returns the replay of a week of recorded market quotes.
func RealHistory() *ReplayHistory {
	days := make([]Day, 0, len(realQuotes))
	for _, q := range realQuotes {
		prices, err := NewPrices(map[Asset]decimal.Decimal{
			LKOH: decimal.NewFromInt(q.lkoh),
			SBER: decimal.NewFromInt(q.sber),
		})
		if err != nil {
			panic(err)
		}
		days = append(days, Day{Date: date.MustParse(q.on), Prices: prices})
	}
	h, err := NewReplayHistory(days...)
	if err != nil {
		panic(err)
	}
	return h
}
