package stonks

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/etnz/stonks/date"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMinMultiplier and DefaultMaxMultiplier bound the daily price change of a ChaosHistory:
	// an asset can lose or gain up to 50% in a single day.
	DefaultMinMultiplier = 0.5
	DefaultMaxMultiplier = 1.5
	// DefaultSeed is the seed used when none is given.
	DefaultSeed int64 = 42

	// pricePrecision is the number of decimal places kept on random prices.
	pricePrecision = 6
)

// minTick is the lowest price a random walk can reach.
var minTick = decimal.New(1, -pricePrecision)

// ChaosHistory is a random walk starting from the default prices.
//
// Every day, each asset price is multiplied by a factor drawn uniformly in
// [Min, Max). The draws come from a generator seeded with Seed at the start of
// every pass, so the same parameters always produce the same path.
type ChaosHistory struct {
	Start    date.Date // first day, today if zero
	Min, Max float64   // multiplier range
	Seed     int64
}

// NewChaosHistory returns a random walk starting today.
func NewChaosHistory(min, max float64, seed int64) (*ChaosHistory, error) {
	h := &ChaosHistory{Start: date.Today(), Min: min, Max: max, Seed: seed}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks the multiplier range: prices must stay positive so 0 < Min <= Max, both finite.
func (h *ChaosHistory) Validate() error {
	if !finite(h.Min) || !finite(h.Max) || !finite(h.Max-h.Min) || !(h.Min > 0) || h.Max < h.Min {
		return fmt.Errorf("%w: [%v, %v)", ErrInvalidMultiplierRange, h.Min, h.Max)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Days implements History. An invalid range yields no day at all.
func (h *ChaosHistory) Days() iter.Seq2[date.Date, Prices] {
	start, lo, hi := h.Start, h.Min, h.Max
	if start.IsZero() {
		start = date.Today()
	}
	valid := h.Validate() == nil
	return func(yield func(date.Date, Prices) bool) {
		if !valid {
			return
		}
		rng := rand.New(rand.NewSource(h.Seed))
		prices := DefaultPrices()
		for day := 0; ; day++ {
			if day > 0 {
				prices = prices.walk(func() decimal.Decimal {
					return decimal.NewFromFloat(lo + rng.Float64()*(hi-lo))
				})
			}
			if !yield(start.Add(day), prices) {
				return
			}
		}
	}
}

// walk returns the next day quotes, each asset price multiplied by its own draw.
func (p Prices) walk(multiplier func() decimal.Decimal) Prices {
	var next Prices
	for i, v := range p.values {
		v = v.Mul(multiplier()).Round(pricePrecision)
		if v.LessThan(minTick) {
			v = minTick
		}
		next.values[i] = v
	}
	return next
}
