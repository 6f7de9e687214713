package stonks

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Prices holds the quote of every asset for one trading day.
//
// A Prices value is immutable. The zero value has no quotes and is only
// meaningful as a "not set" marker, see IsZero.
type Prices struct {
	values [numAssets]decimal.Decimal
}

// NewPrices returns the quotes for a day. Every asset must be quoted with a strictly positive price.
func NewPrices(quotes map[Asset]decimal.Decimal) (Prices, error) {
	var p Prices
	for a, v := range quotes {
		i, ok := a.index()
		if !ok {
			return Prices{}, fmt.Errorf("%w: %q", ErrUnknownAsset, a)
		}
		if !v.IsPositive() {
			return Prices{}, fmt.Errorf("%w: %s is quoted %s", ErrInvalidPrice, a, v)
		}
		p.values[i] = v
	}
	for i, a := range assets {
		if p.values[i].IsZero() {
			return Prices{}, fmt.Errorf("%w: %s is not quoted", ErrInvalidPrice, a)
		}
	}
	return p, nil
}

// DefaultPrices returns today's default quotes.
func DefaultPrices() Prices { return Prices{values: defaultPrices} }

// Price returns the quote of an asset.
func (p Prices) Price(a Asset) (decimal.Decimal, error) {
	i, ok := a.index()
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownAsset, a)
	}
	return p.values[i], nil
}

// All returns an iterator over every (asset, price) pair in asset definition order.
func (p Prices) All() iter.Seq2[Asset, decimal.Decimal] {
	return func(yield func(Asset, decimal.Decimal) bool) {
		for i, a := range assets {
			if !yield(a, p.values[i]) {
				return
			}
		}
	}
}

// Equal reports whether p and q quote every asset at the same price.
func (p Prices) Equal(q Prices) bool {
	for i := range p.values {
		if !p.values[i].Equal(q.values[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether p is the zero value.
func (p Prices) IsZero() bool { return p.Equal(Prices{}) }

func (p Prices) String() string {
	s := "{"
	for a, v := range p.All() {
		if len(s) > 1 {
			s += " "
		}
		s += fmt.Sprintf("%s:%s", a, v)
	}
	return s + "}"
}
