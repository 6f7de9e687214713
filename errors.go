package stonks

import "errors"

// Errors returned by the simulator and the price histories.
//
// They are wrapped with context (asset, amounts) so callers should match them with errors.Is.
var (
	// ErrInvalidInitialCash is returned when a simulation starts with a negative cash balance.
	ErrInvalidInitialCash = errors.New("initial cash cannot be negative")
	// ErrUnknownAsset is returned when an asset is not part of the tradable set.
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrInsufficientCash is returned when a purchase costs more than the available cash.
	ErrInsufficientCash = errors.New("not enough cash")
	// ErrInsufficientHoldings is returned when selling more units than held.
	ErrInsufficientHoldings = errors.New("not enough holdings")
	// ErrEndOfHistory is returned once the price history has no more days. It is terminal.
	ErrEndOfHistory = errors.New("no more days in the price history")
	// ErrInvalidQuantity is returned when a trade quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice is returned when a price is missing or not strictly positive.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidMultiplierRange is returned for a random walk range outside 0 < min <= max.
	ErrInvalidMultiplierRange = errors.New("invalid price multiplier range")
)
