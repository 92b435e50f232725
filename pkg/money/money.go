// Package money provides the currency codes and decimal amount rules used by the ledger.
//
// Invariants:
//   - Amounts are shopspring decimals; precision is never rounded away.
//   - A monetary amount carries at most MaxScale fractional digits.
//   - Only the currencies registered in this package are accepted.
package money

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale is the maximum number of fractional digits an amount may carry.
const MaxScale int32 = 2

// Currency describes a supported monetary unit.
type Currency struct {
	Code   Code   // 3-letter ISO 4217 code (e.g., "USD")
	Symbol string // Display symbol
}

var currencies = map[Code]Currency{
	USD: {Code: USD, Symbol: "$"},
	EUR: {Code: EUR, Symbol: "€"},
	RUB: {Code: RUB, Symbol: "₽"},
}

// IsSupported reports whether the code belongs to the supported set.
func (c Code) IsSupported() bool {
	_, ok := currencies[c]
	return ok
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ToCurrency returns the currency metadata for a supported code.
func (c Code) ToCurrency() (Currency, error) {
	cur, ok := currencies[c]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}
	return cur, nil
}

// ParseCode converts a raw string into a supported currency code.
// Matching is exact: "usd" is not USD.
func ParseCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(s))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// Supported returns all supported currency codes in lexical order.
func Supported() []Code {
	out := make([]Code, 0, len(currencies))
	for c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Scale returns the number of fractional digits carried by d.
// "1.500" has a scale of 3 even though its value equals 1.5.
func Scale(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// ValidateAmount checks that amount is a positive value with at most MaxScale
// fractional digits. Amounts with greater precision are rejected, not rounded.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	if Scale(amount) > MaxScale {
		return fmt.Errorf("%w: at most %d fractional digits allowed", ErrInvalidAmount, MaxScale)
	}
	return nil
}

// ParseAmount parses a decimal string. Sign and scale are left to
// ValidateAmount, so a parsed zero still reaches the account checks that
// run before the amount check.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Display renders an amount prefixed with the currency symbol, e.g. "$60.00".
// Unsupported codes are rendered without a symbol.
func Display(d decimal.Decimal, c Code) string {
	cur, err := c.ToCurrency()
	if err != nil {
		return Format(d)
	}
	return cur.Symbol + Format(d)
}

// Format renders an amount with exactly MaxScale fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(MaxScale)
}
