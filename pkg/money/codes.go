package money

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	RUB Code = "RUB" // Russian Ruble
)
