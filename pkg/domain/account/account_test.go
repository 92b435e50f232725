package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func newAccount(t *testing.T, id int64, balance string, status domainaccount.Status) *domainaccount.Account {
	t.Helper()
	acc, err := domainaccount.New().
		WithID(id).
		WithOwnerName("Sergey Gluhov").
		WithCurrency(money.USD).
		WithBalance(decimal.RequireFromString(balance)).
		WithStatus(status).
		Build()
	require.NoError(t, err)
	return acc
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	acc, err := domainaccount.New().
		WithID(1).
		WithOwnerName("Dima Ivanov").
		WithCurrency(money.EUR).
		WithCreatedAt(created).
		Build()
	require.NoError(err)

	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, "40817810000000000001", acc.AccountNumber)
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, money.EUR, acc.Currency)
	assert.Equal(t, domainaccount.StatusActive, acc.Status)
	assert.Equal(t, created, acc.CreatedAt)
	assert.Equal(t, "Dima Ivanov", acc.OwnerName)
}

func TestNewAccount_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		builder *domainaccount.Builder
		wantErr error
	}{
		{
			name:    "blank owner",
			builder: domainaccount.New().WithID(1).WithOwnerName("   "),
			wantErr: domainaccount.ErrInvalidOwner,
		},
		{
			name:    "unsupported currency",
			builder: domainaccount.New().WithID(1).WithOwnerName("Alex").WithCurrency("JPY"),
			wantErr: domainaccount.ErrUnsupportedCurrency,
		},
		{
			name:    "unknown status",
			builder: domainaccount.New().WithID(1).WithOwnerName("Alex").WithStatus("FROZEN"),
			wantErr: domainaccount.ErrInvalidStatus,
		},
		{
			name: "negative opening balance",
			builder: domainaccount.New().WithID(1).WithOwnerName("Alex").
				WithBalance(decimal.RequireFromString("-1")),
			wantErr: domainaccount.ErrInvalidAmount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.builder.Build()
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := domainaccount.New().WithOwnerName("Alex").Build()
	assert.Error(t, err, "zero id must be rejected")
}

func TestNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "40817810000000000042", domainaccount.Number(42))
	assert.Equal(t, "40817810123456789012", domainaccount.Number(123456789012))
	assert.Len(t, domainaccount.Number(7), 20)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"ACTIVE", "BLOCKED", "CLOSED"} {
		st, err := domainaccount.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, domainaccount.Status(s), st)
	}
	_, err := domainaccount.ParseStatus("active")
	assert.ErrorIs(t, err, domainaccount.ErrInvalidStatus)
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	t.Run("credits the balance", func(t *testing.T) {
		t.Parallel()
		acc := newAccount(t, 1, "100.00", domainaccount.StatusActive)
		require.NoError(t, acc.Deposit(decimal.RequireFromString("0.01")))
		assert.Equal(t, "100.01", money.Format(acc.Balance))
	})

	t.Run("blocked account rejects before amount validation", func(t *testing.T) {
		t.Parallel()
		acc := newAccount(t, 1, "100", domainaccount.StatusBlocked)
		err := acc.Deposit(decimal.Zero)
		assert.ErrorIs(t, err, domainaccount.ErrAccountBlocked)
		assert.Equal(t, "100.00", money.Format(acc.Balance))
	})

	t.Run("closed account is blocked", func(t *testing.T) {
		t.Parallel()
		acc := newAccount(t, 1, "0", domainaccount.StatusClosed)
		assert.ErrorIs(t, acc.Deposit(decimal.NewFromInt(1)), domainaccount.ErrAccountBlocked)
	})

	t.Run("precision beyond cents", func(t *testing.T) {
		t.Parallel()
		acc := newAccount(t, 1, "0", domainaccount.StatusActive)
		assert.ErrorIs(t, acc.Deposit(decimal.RequireFromString("1.005")), domainaccount.ErrInvalidAmount)
		assert.True(t, acc.Balance.IsZero())
	})
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, 1, "100.00", domainaccount.StatusActive)

	t.Run("successful withdrawal", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(decimal.NewFromInt(50)))
	})

	t.Run("exact balance", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(decimal.NewFromInt(100)))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := acc.ValidateWithdraw(decimal.RequireFromString("100.01"))
		assert.ErrorIs(t, err, domainaccount.ErrInsufficientFunds)
	})

	t.Run("negative amount", func(t *testing.T) {
		err := acc.ValidateWithdraw(decimal.NewFromInt(-10))
		assert.ErrorIs(t, err, domainaccount.ErrInvalidAmount)
	})
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, 1, "500", domainaccount.StatusActive)
	require.NoError(t, acc.Withdraw(decimal.RequireFromString("200.50")))
	assert.Equal(t, "299.50", money.Format(acc.Balance))

	err := acc.Withdraw(decimal.NewFromInt(300))
	require.ErrorIs(t, err, domainaccount.ErrInsufficientFunds)
	assert.Equal(t, "299.50", money.Format(acc.Balance), "failed withdrawal must not mutate")
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		balance string
		from    domainaccount.Status
		to      domainaccount.Status
		wantErr error
	}{
		{"block active", "10", domainaccount.StatusActive, domainaccount.StatusBlocked, nil},
		{"unblock", "10", domainaccount.StatusBlocked, domainaccount.StatusActive, nil},
		{"close empty", "0", domainaccount.StatusActive, domainaccount.StatusClosed, nil},
		{"close blocked empty", "0", domainaccount.StatusBlocked, domainaccount.StatusClosed, nil},
		{"close with balance", "0.01", domainaccount.StatusActive, domainaccount.StatusClosed, domainaccount.ErrAccountHasBalance},
		{"reopen closed", "0", domainaccount.StatusClosed, domainaccount.StatusActive, domainaccount.ErrAccountAlreadyClosed},
		{"close closed", "0", domainaccount.StatusClosed, domainaccount.StatusClosed, domainaccount.ErrAccountAlreadyClosed},
		{"unknown status", "0", domainaccount.StatusActive, "FROZEN", domainaccount.ErrInvalidStatus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			acc := newAccount(t, 3, tc.balance, tc.from)
			err := acc.ChangeStatus(tc.to)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, acc.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, acc.Status)
		})
	}
}

func TestChangeOwner(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, 1, "0", domainaccount.StatusBlocked)
	require.NoError(t, acc.ChangeOwner("Maria Volkova"))
	assert.Equal(t, "Maria Volkova", acc.OwnerName)
	assert.ErrorIs(t, acc.ChangeOwner(" "), domainaccount.ErrInvalidOwner)

	closed := newAccount(t, 2, "0", domainaccount.StatusClosed)
	assert.ErrorIs(t, closed.ChangeOwner("Someone"), domainaccount.ErrAccountAlreadyClosed)
	assert.Equal(t, "Sergey Gluhov", closed.OwnerName)
}

func TestClose(t *testing.T) {
	t.Parallel()

	withBalance := newAccount(t, 1, "5", domainaccount.StatusClosed)
	assert.ErrorIs(t, withBalance.Close(), domainaccount.ErrAccountHasBalance,
		"balance is checked before the closed state")

	acc := newAccount(t, 2, "0", domainaccount.StatusBlocked)
	require.NoError(t, acc.Close())
	assert.True(t, acc.IsClosed())
	assert.ErrorIs(t, acc.Close(), domainaccount.ErrAccountAlreadyClosed)
}

func TestClone(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, 1, "10", domainaccount.StatusActive)
	cp := acc.Clone()
	require.NoError(t, cp.Deposit(decimal.NewFromInt(5)))
	assert.Equal(t, "10.00", money.Format(acc.Balance))
	assert.Equal(t, "15.00", money.Format(cp.Balance))
	assert.Nil(t, (*domainaccount.Account)(nil).Clone())
}
