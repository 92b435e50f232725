package account_test

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	infratransaction "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/pkg/config"
	accountdomain "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func newTestService(t testing.TB) (*accountsvc.Service, *infraeventbus.MemoryEventBus) {
	t.Helper()
	bus := infraeventbus.NewWithMemory(slog.Default(), infraeventbus.WithRecording())
	svc := accountsvc.NewService(config.Deps{
		AccountRepo:     infraaccount.New(),
		TransactionRepo: infratransaction.New(),
		EventBus:        bus,
		Logger:          slog.Default(),
	})
	return svc, bus
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// openAccount creates an USD account and funds it with balance.
func openAccount(t testing.TB, svc *accountsvc.Service, balance string) *accountdomain.Account {
	t.Helper()
	ctx := context.Background()
	acc, err := svc.CreateAccount(ctx, "Test", money.USD)
	require.NoError(t, err)
	if b := dec(balance); b.IsPositive() {
		_, err = svc.Deposit(ctx, acc.ID, b, "")
		require.NoError(t, err)
	}
	acc, err = svc.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	return acc
}
