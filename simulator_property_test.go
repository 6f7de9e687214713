package stonks

import (
	"testing"

	"github.com/etnz/stonks/date"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// TestTradesPreserveTotalValue checks that orders only convert cash into positions at
// the day's price: the total value never changes within a day, and failed orders have no effect.
func TestTradesPreserveTotalValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cash := rapid.Int64Range(0, 1_000_000).Draw(t, "cash")
		seed := rapid.Int64().Draw(t, "seed")
		h := &ChaosHistory{Start: date.New(2023, 9, 10), Min: DefaultMinMultiplier, Max: DefaultMaxMultiplier, Seed: seed}

		s, err := NewSimulator(h, decimal.NewFromInt(cash))
		if err != nil {
			t.Fatalf("NewSimulator() error = %v", err)
		}
		defer s.Close()

		orders := rapid.IntRange(1, 60).Draw(t, "orders")
		for i := 0; i < orders; i++ {
			if rapid.IntRange(0, 9).Draw(t, "next day") == 0 {
				if err := s.AdvanceDay(); err != nil {
					t.Fatalf("AdvanceDay() error = %v", err)
				}
				continue
			}

			asset := rapid.SampledFrom([]Asset{LKOH, SBER}).Draw(t, "asset")
			quantity := rapid.Int64Range(-2, 300).Draw(t, "quantity")
			buy := rapid.Bool().Draw(t, "buy")

			cashBefore, heldBefore, valueBefore := s.Cash(), s.Holding(asset), s.TotalValue()
			if buy {
				err = s.Buy(asset, quantity)
			} else {
				err = s.Sell(asset, quantity)
			}

			if err != nil {
				if !s.Cash().Equal(cashBefore) || s.Holding(asset) != heldBefore {
					t.Fatalf("failed order %v changed the portfolio", err)
				}
			}
			if !s.TotalValue().Equal(valueBefore) {
				t.Fatalf("total value changed from %s to %s", valueBefore, s.TotalValue())
			}
			if s.Cash().IsNegative() {
				t.Fatalf("cash is negative: %s", s.Cash())
			}
			for a := range Assets() {
				if s.Holding(a) < 0 {
					t.Fatalf("holding of %s is negative: %d", a, s.Holding(a))
				}
			}
		}
	})
}

// TestSameSeedSameSession checks that a random history is reproducible through the simulator.
func TestSameSeedSameSession(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		days := rapid.IntRange(1, 30).Draw(t, "days")
		newHistory := func() History {
			return &ChaosHistory{Start: date.New(2023, 9, 10), Min: DefaultMinMultiplier, Max: DefaultMaxMultiplier, Seed: seed}
		}

		a, _ := NewSimulator(newHistory(), decimal.NewFromInt(1000))
		b, _ := NewSimulator(newHistory(), decimal.NewFromInt(1000))
		defer a.Close()
		defer b.Close()
		for i := 0; i < days; i++ {
			if a.Date() != b.Date() || !a.Prices().Equal(b.Prices()) {
				t.Fatalf("day %d differs: %v %v vs %v %v", i, a.Date(), a.Prices(), b.Date(), b.Prices())
			}
			_ = a.AdvanceDay()
			_ = b.AdvanceDay()
		}
	})
}
