package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// GetAccountTransactions lists every transaction where the account is either
// side, newest first. The scan runs under the account lock so it never sees
// a journal entry without its balance change.
func (s *Service) GetAccountTransactions(ctx context.Context, id int64) ([]*account.Transaction, error) {
	var txs []*account.Transaction
	err := s.accounts.View(ctx, id, func(*account.Account) error {
		var err error
		txs, err = s.transactions.ListByAccount(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Debug("GetAccountTransactions failed", "accountID", id, "error", err)
		return nil, err
	}
	return txs, nil
}

// GetAccountTransactionsByType is GetAccountTransactions filtered by type.
func (s *Service) GetAccountTransactionsByType(
	ctx context.Context,
	id int64,
	txType account.TransactionType,
) ([]*account.Transaction, error) {
	var txs []*account.Transaction
	err := s.accounts.View(ctx, id, func(*account.Account) error {
		var err error
		txs, err = s.transactions.ListByAccountAndType(ctx, id, txType)
		return err
	})
	if err != nil {
		s.logger.Debug("GetAccountTransactionsByType failed", "accountID", id, "type", txType, "error", err)
		return nil, err
	}
	return txs, nil
}
