package money_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		code      money.Code
		supported bool
	}{
		{"USD", money.USD, true},
		{"EUR", money.EUR, true},
		{"RUB", money.RUB, true},
		{"well formed but unsupported", money.Code("GBP"), false},
		{"lowercase", money.Code("usd"), false},
		{"too long", money.Code("USDT"), false},
		{"empty", money.Code(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.supported, tt.code.IsSupported())
		})
	}
}

func TestParseCode(t *testing.T) {
	t.Parallel()
	c, err := money.ParseCode("EUR")
	require.NoError(t, err)
	assert.Equal(t, money.EUR, c)

	_, err = money.ParseCode("JPY")
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}

func TestToCurrency(t *testing.T) {
	t.Parallel()
	cur, err := money.RUB.ToCurrency()
	require.NoError(t, err)
	assert.Equal(t, "₽", cur.Symbol)

	_, err = money.Code("XXX").ToCurrency()
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}

func TestSupported(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []money.Code{money.EUR, money.RUB, money.USD}, money.Supported())
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"whole number", decimal.NewFromInt(100), false},
		{"two decimals", decimal.RequireFromString("100.55"), false},
		{"one decimal", decimal.RequireFromString("0.5"), false},
		{"smallest unit", decimal.RequireFromString("0.01"), false},
		{"zero", decimal.Zero, true},
		{"zero value", decimal.Decimal{}, true},
		{"negative", decimal.RequireFromString("-1.00"), true},
		{"three decimals", decimal.RequireFromString("10.005"), true},
		{"trailing zero beyond scale", decimal.RequireFromString("1.500"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := money.ValidateAmount(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestScale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int32(0), money.Scale(decimal.NewFromInt(42)))
	assert.Equal(t, int32(2), money.Scale(decimal.RequireFromString("4.20")))
	assert.Equal(t, int32(3), money.Scale(decimal.RequireFromString("0.001")))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()
	d, err := money.ParseAmount(" 20.00 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(20)))

	_, err = money.ParseAmount("abc")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	// Sign and scale are checked later, by ValidateAmount.
	for _, raw := range []string{"0", "-5", "0.001"} {
		_, err = money.ParseAmount(raw)
		assert.NoError(t, err, raw)
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$60.00", money.Display(decimal.NewFromInt(60), money.USD))
	assert.Equal(t, "₽0.50", money.Display(decimal.RequireFromString("0.5"), money.RUB))
	assert.Equal(t, "1.00", money.Display(decimal.NewFromInt(1), money.Code("XXX")))
}

func TestFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "100.00", money.Format(decimal.NewFromInt(100)))
	assert.Equal(t, "0.50", money.Format(decimal.RequireFromString("0.5")))
}

func FuzzValidateAmount(f *testing.F) {
	f.Add("100.00")
	f.Add("0.01")
	f.Add("-5")
	f.Add("1.999")
	f.Fuzz(func(t *testing.T, s string) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Skip()
		}
		if money.ValidateAmount(d) == nil {
			if !d.IsPositive() || money.Scale(d) > money.MaxScale {
				t.Fatalf("accepted invalid amount %q", s)
			}
		}
	})
}
