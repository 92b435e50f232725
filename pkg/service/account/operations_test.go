package account_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/pkg/config"
	accountdomain "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/money"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("scenario A: deposit into a fresh account", func(t *testing.T) {
		t.Parallel()
		svc, bus := newTestService(t)
		acc := openAccount(t, svc, "0")

		tx, err := svc.Deposit(ctx, acc.ID, dec("100.00"), "")
		require.NoError(t, err)
		assert.Equal(t, accountdomain.TransactionTypeDeposit, tx.Type)
		assert.Nil(t, tx.FromAccountID)
		require.NotNil(t, tx.ToAccountID)
		assert.Equal(t, acc.ID, *tx.ToAccountID)
		assert.Equal(t, "Account deposit", tx.Description)
		assert.Equal(t, accountdomain.TransactionStatusSuccess, tx.Status)

		balance, err := svc.GetBalance(ctx, acc.ID)
		require.NoError(t, err)
		assert.Equal(t, "100.00", money.Format(balance))

		txs, err := svc.GetAccountTransactions(ctx, acc.ID)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, tx.ID, txs[0].ID)

		published := bus.Published()
		last, ok := published[len(published)-1].(*events.FundsDeposited)
		require.True(t, ok)
		assert.Equal(t, tx.ID, last.TransactionID)
		assert.Equal(t, "100.00", money.Format(last.Balance))
	})

	tests := []struct {
		name    string
		status  accountdomain.Status
		id      int64
		amount  string
		wantErr error
	}{
		{"not found", accountdomain.StatusActive, 99, "-1", accountdomain.ErrAccountNotFound},
		{"blocked before invalid amount", accountdomain.StatusBlocked, 0, "-1", accountdomain.ErrAccountBlocked},
		{"zero amount", accountdomain.StatusActive, 0, "0", accountdomain.ErrInvalidAmount},
		{"negative amount", accountdomain.StatusActive, 0, "-5", accountdomain.ErrInvalidAmount},
		{"three fractional digits", accountdomain.StatusActive, 0, "1.500", accountdomain.ErrInvalidAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			acc := openAccount(t, svc, "10")
			if tc.status != accountdomain.StatusActive {
				_, err := svc.UpdateAccountStatus(ctx, acc.ID, tc.status)
				require.NoError(t, err)
			}
			id := acc.ID
			if tc.id != 0 {
				id = tc.id
			}

			tx, err := svc.Deposit(ctx, id, dec(tc.amount), "")
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, tx)

			stored, _ := svc.GetAccount(ctx, acc.ID)
			assert.Equal(t, "10.00", money.Format(stored.Balance))
			txs, _ := svc.GetAccountTransactions(ctx, acc.ID)
			assert.Len(t, txs, 1, "only the funding deposit is journaled")
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("debits and journals", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		acc := openAccount(t, svc, "80.00")

		tx, err := svc.Withdraw(ctx, acc.ID, dec("80"), "ATM")
		require.NoError(t, err)
		assert.Equal(t, accountdomain.TransactionTypeWithdrawal, tx.Type)
		require.NotNil(t, tx.FromAccountID)
		assert.Equal(t, acc.ID, *tx.FromAccountID)
		assert.Nil(t, tx.ToAccountID)
		assert.Equal(t, "ATM", tx.Description)

		balance, _ := svc.GetBalance(ctx, acc.ID)
		assert.True(t, balance.IsZero())
	})

	t.Run("scenario B: insufficient funds", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		acc := openAccount(t, svc, "30.00")

		_, err := svc.Withdraw(ctx, acc.ID, dec("50.00"), "")
		require.ErrorIs(t, err, accountdomain.ErrInsufficientFunds)

		balance, _ := svc.GetBalance(ctx, acc.ID)
		assert.Equal(t, "30.00", money.Format(balance))
		withdrawals, err := svc.GetAccountTransactionsByType(ctx, acc.ID, accountdomain.TransactionTypeWithdrawal)
		require.NoError(t, err)
		assert.Empty(t, withdrawals)
	})

	t.Run("invalid amount before funds", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		acc := openAccount(t, svc, "1")
		_, err := svc.Withdraw(ctx, acc.ID, dec("100.001"), "")
		assert.ErrorIs(t, err, accountdomain.ErrInvalidAmount)
	})

	t.Run("blocked", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		acc := openAccount(t, svc, "100")
		_, err := svc.UpdateAccountStatus(ctx, acc.ID, accountdomain.StatusBlocked)
		require.NoError(t, err)
		_, err = svc.Withdraw(ctx, acc.ID, dec("1000"), "")
		assert.ErrorIs(t, err, accountdomain.ErrAccountBlocked)
	})
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("conservation", func(t *testing.T) {
		t.Parallel()
		svc, bus := newTestService(t)
		x := openAccount(t, svc, "100.00")
		y := openAccount(t, svc, "5.50")

		tx, err := svc.Transfer(ctx, x.ID, y.ID, dec("40.25"), "")
		require.NoError(t, err)
		assert.Equal(t, "Transfer between accounts", tx.Description)

		xAfter, _ := svc.GetBalance(ctx, x.ID)
		yAfter, _ := svc.GetBalance(ctx, y.ID)
		assert.True(t, xAfter.Equal(x.Balance.Sub(dec("40.25"))))
		assert.True(t, yAfter.Equal(y.Balance.Add(dec("40.25"))))

		xTransfers, _ := svc.GetAccountTransactionsByType(ctx, x.ID, accountdomain.TransactionTypeTransfer)
		yTransfers, _ := svc.GetAccountTransactionsByType(ctx, y.ID, accountdomain.TransactionTypeTransfer)
		require.Len(t, xTransfers, 1)
		require.Len(t, yTransfers, 1)
		assert.Equal(t, tx.ID, xTransfers[0].ID)
		assert.Equal(t, tx.ID, yTransfers[0].ID)
		assert.Equal(t, x.ID, *tx.FromAccountID)
		assert.Equal(t, y.ID, *tx.ToAccountID)

		published := bus.Published()
		moved, ok := published[len(published)-1].(*events.FundsTransferred)
		require.True(t, ok)
		assert.Equal(t, x.ID, moved.AccountID)
		assert.Equal(t, y.ID, moved.ToAccountID)
	})

	t.Run("scenario C: same account is rejected before lookup", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		a := openAccount(t, svc, "100.00")

		_, err := svc.Transfer(ctx, a.ID, a.ID, dec("20.00"), "")
		require.ErrorIs(t, err, accountdomain.ErrCannotTransferToSameAccount)
		_, err = svc.Transfer(ctx, 999, 999, dec("-1"), "")
		require.ErrorIs(t, err, accountdomain.ErrCannotTransferToSameAccount)

		balance, _ := svc.GetBalance(ctx, a.ID)
		assert.Equal(t, "100.00", money.Format(balance))
	})

	t.Run("from account is resolved first", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.Transfer(ctx, 41, 42, dec("1"), "")
		require.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "id 41")
	})

	t.Run("from account status is checked first", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		from := openAccount(t, svc, "10")
		to := openAccount(t, svc, "0")
		_, err := svc.UpdateAccountStatus(ctx, from.ID, accountdomain.StatusBlocked)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteAccount(ctx, to.ID))

		_, err = svc.Transfer(ctx, from.ID, to.ID, dec("0"), "")
		require.ErrorIs(t, err, accountdomain.ErrAccountBlocked)
		assert.Contains(t, err.Error(), "account 1 is BLOCKED")
	})

	failures := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"invalid amount", "0.001", accountdomain.ErrInvalidAmount},
		{"insufficient funds", "10.01", accountdomain.ErrInsufficientFunds},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			from := openAccount(t, svc, "10")
			to := openAccount(t, svc, "0")

			_, err := svc.Transfer(ctx, from.ID, to.ID, dec(tc.amount), "")
			require.ErrorIs(t, err, tc.wantErr)

			fromBal, _ := svc.GetBalance(ctx, from.ID)
			toBal, _ := svc.GetBalance(ctx, to.ID)
			assert.Equal(t, "10.00", money.Format(fromBal))
			assert.True(t, toBal.IsZero())
			txs, _ := svc.GetAccountTransactions(ctx, to.ID)
			assert.Empty(t, txs)
		})
	}
}

func TestGetAccountTransactions(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := openAccount(t, svc, "100")
	b := openAccount(t, svc, "0")

	_, err := svc.Withdraw(ctx, a.ID, dec("10"), "")
	require.NoError(t, err)
	_, err = svc.Transfer(ctx, a.ID, b.ID, dec("20"), "")
	require.NoError(t, err)
	_, err = svc.Transfer(ctx, b.ID, a.ID, dec("5"), "")
	require.NoError(t, err)

	txs, err := svc.GetAccountTransactions(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, txs, 4)
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Timestamp.After(txs[i-1].Timestamp), "newest first")
	}
	assert.Equal(t, accountdomain.TransactionTypeDeposit, txs[3].Type)

	transfers, err := svc.GetAccountTransactionsByType(ctx, a.ID, accountdomain.TransactionTypeTransfer)
	require.NoError(t, err)
	assert.Len(t, transfers, 2)

	again, _ := svc.GetAccountTransactions(ctx, a.ID)
	assert.Equal(t, txs, again, "listing is stable between calls")

	_, err = svc.GetAccountTransactions(ctx, 404)
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	_, err = svc.GetAccountTransactionsByType(ctx, 404, accountdomain.TransactionTypeDeposit)
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
}

// failingJournal is a transaction journal whose Append is scripted with testify/mock.
type failingJournal struct {
	mock.Mock
}

func (m *failingJournal) Append(ctx context.Context, tx *accountdomain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *failingJournal) Get(context.Context, int64) (*accountdomain.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (m *failingJournal) List(context.Context) ([]*accountdomain.Transaction, error) {
	return nil, nil
}

func (m *failingJournal) ListByAccount(context.Context, int64) ([]*accountdomain.Transaction, error) {
	return nil, nil
}

func (m *failingJournal) ListByAccountAndType(
	context.Context, int64, accountdomain.TransactionType,
) ([]*accountdomain.Transaction, error) {
	return nil, nil
}

func TestJournalFailureLeavesBalanceUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	journal := &failingJournal{}
	errDisk := errors.New("journal unavailable")
	journal.On("Append", mock.Anything, mock.Anything).Return(errDisk)

	svc := accountsvc.NewService(config.Deps{
		AccountRepo:     infraaccount.New(),
		TransactionRepo: journal,
		Logger:          slog.Default(),
	})
	a, err := svc.CreateAccount(ctx, "Dasha Smirnova", money.USD)
	require.NoError(t, err)
	b, err := svc.CreateAccount(ctx, "Test User", money.USD)
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, a.ID, decimal.NewFromInt(750), "")
	require.ErrorIs(t, err, errDisk)
	for _, business := range []error{
		accountdomain.ErrAccountNotFound,
		accountdomain.ErrAccountBlocked,
		accountdomain.ErrInvalidAmount,
		accountdomain.ErrInsufficientFunds,
	} {
		assert.NotErrorIs(t, err, business, "internal errors are not business failures")
	}
	balance, _ := svc.GetBalance(ctx, a.ID)
	assert.True(t, balance.IsZero())

	_, err = svc.Transfer(ctx, a.ID, b.ID, decimal.Zero, "")
	assert.ErrorIs(t, err, accountdomain.ErrInvalidAmount, "validation runs before the journal")
	journal.AssertNumberOfCalls(t, "Append", 1)
}
