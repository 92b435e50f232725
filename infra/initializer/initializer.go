package initializer

import (
	"context"
	"errors"
	"fmt"
	"os"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	infratransaction "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/internal/fixtures/accounts"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/sequence"
)

// InitializeDependencies initializes all the application dependencies.
// The ledger lives entirely in memory: every call yields an empty ledger.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	if cfg == nil || cfg.Log == nil {
		return nil, errors.New("initialize dependencies: incomplete configuration")
	}
	logger := setupLogger(os.Stdout, cfg.Log)

	deps := &config.Deps{
		AccountRepo:     infraaccount.New(),
		TransactionRepo: infratransaction.New(),
		AccountIDs:      sequence.New(),
		TransactionIDs:  sequence.New(),
		EventBus:        infraeventbus.NewWithMemory(logger),
		Logger:          logger,
		Config:          cfg,
	}
	logger.Info("Dependencies initialized", "env", cfg.Env)
	return deps, nil
}

// InitializeApp builds the application and, when enabled, seeds the demo
// accounts from the embedded fixture.
func InitializeApp(ctx context.Context, cfg *config.App) (*app.App, error) {
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		return nil, err
	}
	a := app.New(deps, cfg)

	if cfg.Ledger == nil || !cfg.Ledger.Seed {
		deps.Logger.Info("Skipping demo account seeding")
		return a, nil
	}
	deps.Logger.Info("Loading embedded demo accounts")
	seeds, err := accounts.LoadAccountsCSV("")
	if err != nil {
		return nil, fmt.Errorf("failed to load demo accounts: %w", err)
	}
	if err := a.SeedDemoAccounts(ctx, seeds); err != nil {
		return nil, fmt.Errorf("failed to seed demo accounts: %w", err)
	}
	return a, nil
}
