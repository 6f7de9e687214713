package stonks

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewPrices(t *testing.T) {
	d := decimal.NewFromInt
	testCases := []struct {
		name   string
		quotes map[Asset]decimal.Decimal
		err    error
	}{
		{"complete", map[Asset]decimal.Decimal{LKOH: d(6669), SBER: d(255)}, nil},
		{"fractional", map[Asset]decimal.Decimal{LKOH: decimal.RequireFromString("0.01"), SBER: d(1)}, nil},
		{"missing asset", map[Asset]decimal.Decimal{LKOH: d(6669)}, ErrInvalidPrice},
		{"unknown asset", map[Asset]decimal.Decimal{LKOH: d(1), SBER: d(1), "GAZP": d(1)}, ErrUnknownAsset},
		{"zero price", map[Asset]decimal.Decimal{LKOH: d(0), SBER: d(1)}, ErrInvalidPrice},
		{"negative price", map[Asset]decimal.Decimal{LKOH: d(10), SBER: d(-1)}, ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPrices(tc.quotes)
			if !errors.Is(err, tc.err) {
				t.Fatalf("NewPrices() error = %v, want %v", err, tc.err)
			}
			if err != nil {
				return
			}
			for a, want := range tc.quotes {
				got, err := p.Price(a)
				if err != nil {
					t.Fatalf("Price(%s) error = %v", a, err)
				}
				if !got.Equal(want) {
					t.Errorf("Price(%s) = %s, want %s", a, got, want)
				}
			}
		})
	}
}

func TestDefaultPrices(t *testing.T) {
	p := DefaultPrices()
	if got, _ := p.Price(LKOH); !got.Equal(decimal.NewFromInt(5896)) {
		t.Errorf("default LKOH = %s, want 5896", got)
	}
	if got, _ := p.Price(SBER); !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("default SBER = %s, want 250", got)
	}
	if _, err := p.Price("GAZP"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Price(GAZP) error = %v, want %v", err, ErrUnknownAsset)
	}
	if p.IsZero() {
		t.Errorf("DefaultPrices().IsZero() = true")
	}
	if !(Prices{}).IsZero() {
		t.Errorf("Prices{}.IsZero() = false")
	}
	if got := p.String(); got != "{LKOH:5896 SBER:250}" {
		t.Errorf("String() = %q", got)
	}
}

func TestPricesEqual(t *testing.T) {
	a, _ := NewPrices(map[Asset]decimal.Decimal{LKOH: decimal.RequireFromString("250.0"), SBER: decimal.NewFromInt(1)})
	b, _ := NewPrices(map[Asset]decimal.Decimal{LKOH: decimal.NewFromInt(250), SBER: decimal.NewFromInt(1)})
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal", a, b)
	}
	if a.Equal(DefaultPrices()) {
		t.Errorf("%v and %v should differ", a, DefaultPrices())
	}
}
