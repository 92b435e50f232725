package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount is missing, not positive,
	// or carries more fractional digits than the currency allows.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnsupportedCurrency is returned for currency codes outside the supported set.
	ErrUnsupportedCurrency = errors.New("currency not supported")
)
