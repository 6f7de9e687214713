package stonks

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset identifies a tradable security.
//
// The set of assets is closed: only the constants below are valid.
type Asset string

const (
	LKOH Asset = "LKOH"
	SBER Asset = "SBER"
)

// assets lists every tradable asset in definition order.
var assets = [...]Asset{LKOH, SBER}

const numAssets = len(assets)

// defaultPrices are today's quotes used by the stationary and random histories.
var defaultPrices = [numAssets]decimal.Decimal{
	decimal.NewFromInt(5896), // LKOH
	decimal.NewFromInt(250),  // SBER
}

// Assets returns an iterator over all tradable assets in definition order.
func Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range assets {
			if !yield(a) {
				return
			}
		}
	}
}

// index returns the position of a in the asset set.
func (a Asset) index() (int, bool) {
	for i, x := range assets {
		if x == a {
			return i, true
		}
	}
	return -1, false
}

// Valid reports whether a is a tradable asset.
func (a Asset) Valid() bool {
	_, ok := a.index()
	return ok
}

func (a Asset) String() string { return string(a) }

// ParseAsset parses a user provided symbol. Case and surrounding spaces are ignored.
func ParseAsset(symbol string) (Asset, error) {
	a := Asset(strings.ToUpper(strings.TrimSpace(symbol)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAsset, symbol)
	}
	return a, nil
}
