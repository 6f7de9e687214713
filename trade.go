package stonks

import (
	"github.com/etnz/stonks/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Trade records an executed order.
type Trade struct {
	ID       uuid.UUID
	Date     date.Date
	Side     Side
	Asset    Asset
	Quantity int64
	Price    decimal.Decimal // unit price
	Amount   decimal.Decimal // Price × Quantity, always positive
}

// CashFlow returns the change of cash caused by the trade.
func (t Trade) CashFlow() decimal.Decimal {
	if t.Side == SideBuy {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Valuation is the market value of a position.
type Valuation struct {
	Asset    Asset
	Quantity int64
	Value    decimal.Decimal
}

// Outcome classifies the result of a session.
type Outcome int

const (
	BreakEven Outcome = iota
	Profit
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Profit:
		return "profit"
	case Loss:
		return "loss"
	default:
		return "break-even"
	}
}
