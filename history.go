package stonks

import (
	"iter"

	"github.com/etnz/stonks/date"
)

// History is a source of daily prices.
//
// Days yields (date, prices) pairs in strictly increasing date order. Every call
// starts a new, independent pass over the same sequence: iterating twice yields
// the same days. The sequence may be infinite.
type History interface {
	Days() iter.Seq2[date.Date, Prices]
}

// Cursor pulls days one at a time from a History.
type Cursor struct {
	next func() (date.Date, Prices, bool)
	stop func()
	done bool
}

// NewCursor returns a cursor positioned before the first day of h.
//
// Stop must be called to release the cursor if it is abandoned before the end of the history.
func NewCursor(h History) *Cursor {
	next, stop := iter.Pull2(h.Days())
	return &Cursor{next: next, stop: stop}
}

// Next returns the next day, or ErrEndOfHistory once the history is exhausted.
func (c *Cursor) Next() (date.Date, Prices, error) {
	if c.done {
		return date.Date{}, Prices{}, ErrEndOfHistory
	}
	on, prices, ok := c.next()
	if !ok {
		c.Stop()
		return date.Date{}, Prices{}, ErrEndOfHistory
	}
	return on, prices, nil
}

// Stop releases the cursor. Next returns ErrEndOfHistory afterwards.
func (c *Cursor) Stop() {
	c.done = true
	c.stop()
}

// maxPrealloc bounds the capacity Take reserves up front.
const maxPrealloc = 1024

// Take returns the first n days of h.
func Take(h History, n int) []Day {
	if n <= 0 {
		return []Day{}
	}
	days := make([]Day, 0, min(n, maxPrealloc))
	for on, prices := range h.Days() {
		days = append(days, Day{Date: on, Prices: prices})
		if len(days) == n {
			break
		}
	}
	return days
}
