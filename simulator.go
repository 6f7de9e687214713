package stonks

import (
	"errors"
	"fmt"

	"github.com/etnz/stonks/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulator is a trading session over a price history.
//
// It holds cash and positions, executes orders instantly at the current day's
// quotes and moves forward one day at a time. Once the history is exhausted
// the session is finished and every mutation fails with ErrEndOfHistory.
//
// A Simulator is not safe for concurrent use.
type Simulator struct {
	cursor *Cursor

	start    date.Date
	on       date.Date
	prices   Prices
	cash     decimal.Decimal
	holdings map[Asset]int64
	initial  decimal.Decimal
	trades   []Trade
	finished bool
}

// NewSimulator starts a session on the first day of h with the given cash.
//
// Histories with a Validate method are validated first.
func NewSimulator(h History, cash decimal.Decimal) (*Simulator, error) {
	if cash.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInitialCash, cash)
	}
	if v, ok := h.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	s := &Simulator{
		cursor:   NewCursor(h),
		cash:     cash,
		holdings: make(map[Asset]int64, numAssets),
	}
	for a := range Assets() {
		s.holdings[a] = 0
	}
	if err := s.AdvanceDay(); err != nil {
		return nil, err
	}
	s.start = s.on
	s.initial = s.TotalValue()
	return s, nil
}

// Close releases the price history. The session is finished afterwards.
func (s *Simulator) Close() {
	s.finished = true
	s.cursor.Stop()
}

// AdvanceDay ends the current day and loads the quotes of the next one.
//
// It returns ErrEndOfHistory when there is no next day; the session is then finished.
func (s *Simulator) AdvanceDay() error {
	if s.finished {
		return ErrEndOfHistory
	}
	on, prices, err := s.cursor.Next()
	if errors.Is(err, ErrEndOfHistory) {
		s.finished = true
	}
	if err != nil {
		return err
	}
	s.on, s.prices = on, prices
	return nil
}

// Buy purchases quantity units of asset at today's price.
//
// On error the portfolio is left unchanged.
func (s *Simulator) Buy(asset Asset, quantity int64) error {
	price, err := s.quote(asset, quantity)
	if err != nil {
		return err
	}
	cost := price.Mul(decimal.NewFromInt(quantity))
	if cost.GreaterThan(s.cash) {
		return fmt.Errorf("%w to buy %d %s: need %s, have %s", ErrInsufficientCash, quantity, asset, cost, s.cash)
	}

	s.cash = s.cash.Sub(cost)
	s.holdings[asset] += quantity
	s.record(SideBuy, asset, quantity, price, cost)
	return nil
}

// Sell sells quantity units of asset at today's price.
//
// On error the portfolio is left unchanged.
func (s *Simulator) Sell(asset Asset, quantity int64) error {
	price, err := s.quote(asset, quantity)
	if err != nil {
		return err
	}
	// unknown assets are rejected by quote, every known asset has a position.
	held := s.holdings[asset]
	if held < quantity {
		return fmt.Errorf("%w to sell %d %s: have %d", ErrInsufficientHoldings, quantity, asset, held)
	}

	proceeds := price.Mul(decimal.NewFromInt(quantity))
	s.cash = s.cash.Add(proceeds)
	s.holdings[asset] = held - quantity
	s.record(SideSell, asset, quantity, price, proceeds)
	return nil
}

// quote validates an order and returns today's price of asset.
func (s *Simulator) quote(asset Asset, quantity int64) (decimal.Decimal, error) {
	if s.finished {
		return decimal.Zero, ErrEndOfHistory
	}
	if quantity <= 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	return s.prices.Price(asset)
}

func (s *Simulator) record(side Side, asset Asset, quantity int64, price, amount decimal.Decimal) {
	s.trades = append(s.trades, Trade{
		ID:       uuid.New(),
		Date:     s.on,
		Side:     side,
		Asset:    asset,
		Quantity: quantity,
		Price:    price,
		Amount:   amount,
	})
}

// Start returns the first day of the session.
func (s *Simulator) Start() date.Date { return s.start }

// Day returns the number of the current day, the first day being 1.
func (s *Simulator) Day() int { return s.on.DaysSince(s.start) + 1 }

// Date returns the current trading day.
func (s *Simulator) Date() date.Date { return s.on }

// Prices returns the current day's quotes.
func (s *Simulator) Prices() Prices { return s.prices }

// Cash returns the available cash.
func (s *Simulator) Cash() decimal.Decimal { return s.cash }

// Holding returns the number of units of asset held.
func (s *Simulator) Holding(asset Asset) int64 { return s.holdings[asset] }

// Finished reports whether the price history is exhausted or the session closed.
func (s *Simulator) Finished() bool { return s.finished }

// Trades returns the executed trades in execution order.
func (s *Simulator) Trades() []Trade {
	trades := make([]Trade, len(s.trades))
	copy(trades, s.trades)
	return trades
}

// Valuations returns the market value of every non empty position, in asset definition order.
func (s *Simulator) Valuations() []Valuation {
	var vals []Valuation
	for a, price := range s.prices.All() {
		q := s.holdings[a]
		if q == 0 {
			continue
		}
		vals = append(vals, Valuation{Asset: a, Quantity: q, Value: price.Mul(decimal.NewFromInt(q))})
	}
	return vals
}

// TotalValue returns the cash plus the market value of all positions.
func (s *Simulator) TotalValue() decimal.Decimal {
	total := s.cash
	for _, v := range s.Valuations() {
		total = total.Add(v.Value)
	}
	return total
}

// InitialValue returns the total value on the first day, before any trade.
func (s *Simulator) InitialValue() decimal.Decimal { return s.initial }

// Profit returns the gain (or loss if negative) since the first day.
func (s *Simulator) Profit() decimal.Decimal { return s.TotalValue().Sub(s.initial) }

// Outcome classifies the current profit.
func (s *Simulator) Outcome() Outcome {
	switch p := s.Profit(); {
	case p.IsPositive():
		return Profit
	case p.IsNegative():
		return Loss
	default:
		return BreakEven
	}
}
