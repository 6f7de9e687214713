package stonks

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency cash and prices are displayed in.
const DefaultCurrency = "RUB"

// Money represents a monetary value for display purposes.
//
// The simulator computes with decimal.Decimal, Money attaches a currency to a
// result to format it.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as an amount of currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// ValidateCurrency checks that code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted in its currency, rounded to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	frac := int32(cur.Fraction)
	minor := m.value.Round(frac).Shift(frac)
	if minor.Abs().GreaterThan(maxMinor) {
		return formatLarge(cur.Formatter(), m.value.Round(frac), frac)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// maxMinor is the largest amount of minor units go-money can format.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatLarge formats amounts beyond int64 minor units with the currency's template.
func formatLarge(f *money.Formatter, v decimal.Decimal, frac int32) string {
	digits := v.Abs().StringFixed(frac)
	whole, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteString(f.Decimal)
		b.WriteString(fraction)
	}

	out := strings.Replace(f.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if v.IsNegative() {
		out = "-" + out
	}
	return out
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
