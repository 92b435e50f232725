package app

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/internal/fixtures/accounts"
	"github.com/amirasaad/ledger/pkg/domain/account"
)

// SeedDemoAccounts replays seeds through the ledger service: each account is
// created, funded with its opening balance and moved to its status. Going
// through the service keeps the journal consistent with every balance.
func (a *App) SeedDemoAccounts(ctx context.Context, seeds []accounts.Seed) error {
	logger := a.Deps.Logger.With("seeds", len(seeds))
	logger.Info("Seeding demo accounts")

	for _, s := range seeds {
		acc, err := a.AccountService.CreateAccount(ctx, s.OwnerName, s.Currency)
		if err != nil {
			return fmt.Errorf("seed %q: %w", s.OwnerName, err)
		}
		if s.Balance.IsPositive() {
			if _, err = a.AccountService.Deposit(ctx, acc.ID, s.Balance, s.Description); err != nil {
				return fmt.Errorf("seed %q: opening deposit: %w", s.OwnerName, err)
			}
		}
		if s.Status != account.StatusActive {
			if _, err = a.AccountService.UpdateAccountStatus(ctx, acc.ID, s.Status); err != nil {
				return fmt.Errorf("seed %q: status %s: %w", s.OwnerName, s.Status, err)
			}
		}
	}

	logger.Info("Successfully seeded demo accounts")
	return nil
}
