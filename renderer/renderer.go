// Package renderer turns a trading session into markdown documents.
package renderer

import (
	"github.com/etnz/stonks"
	"github.com/shopspring/decimal"
)

// money formats an amount in the reporting currency.
func money(v decimal.Decimal, cur string) string { return stonks.M(v, cur).String() }

// signed formats an amount with an explicit sign.
func signed(v decimal.Decimal, cur string) string { return stonks.M(v, cur).SignedString() }
