package stonks

import (
	"iter"

	"github.com/etnz/stonks/date"
)

// ChillHistory repeats the same quotes every day, forever.
type ChillHistory struct {
	Start  date.Date // first day, today if zero
	Prices Prices    // quotes, DefaultPrices if zero
}

// NewChillHistory returns a stationary history of the default prices starting today.
func NewChillHistory() *ChillHistory {
	return &ChillHistory{Start: date.Today(), Prices: DefaultPrices()}
}

// Days implements History.
func (h *ChillHistory) Days() iter.Seq2[date.Date, Prices] {
	start, prices := h.Start, h.Prices
	if start.IsZero() {
		start = date.Today()
	}
	if prices.IsZero() {
		prices = DefaultPrices()
	}
	return func(yield func(date.Date, Prices) bool) {
		for day := 0; ; day++ {
			if !yield(start.Add(day), prices) {
				return
			}
		}
	}
}
