package account

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/shopspring/decimal"
)

// Deposit credits amount to the account and journals a DEPOSIT.
// Checks run in order: account exists, account ACTIVE, amount valid.
func (s *Service) Deposit(
	ctx context.Context,
	id int64,
	amount decimal.Decimal,
	description string,
) (*account.Transaction, error) {
	logger := s.logger.With("accountID", id, "amount", amount.String())
	logger.Info("Deposit started")

	var tx *account.Transaction
	acc, err := s.accounts.Update(ctx, id, func(acc *account.Account) error {
		if err := acc.Deposit(amount); err != nil {
			return err
		}
		tx = account.NewDeposit(s.transactionIDs.Next(), acc.ID, amount, description, s.now())
		return s.journal(ctx, tx)
	})
	if err != nil {
		logger.Error("Deposit failed", "error", err)
		return nil, err
	}

	logger.Info("Deposit successful", "transactionID", tx.ID, "balance", acc.Balance.String())
	s.emit(ctx, events.NewFundsDeposited(acc.ID, tx.ID, amount, acc.Balance))
	return tx.Clone(), nil
}

// Withdraw debits amount from the account and journals a WITHDRAWAL.
// Checks run in order: account exists, account ACTIVE, amount valid, funds available.
func (s *Service) Withdraw(
	ctx context.Context,
	id int64,
	amount decimal.Decimal,
	description string,
) (*account.Transaction, error) {
	logger := s.logger.With("accountID", id, "amount", amount.String())
	logger.Info("Withdraw started")

	var tx *account.Transaction
	acc, err := s.accounts.Update(ctx, id, func(acc *account.Account) error {
		if err := acc.Withdraw(amount); err != nil {
			return err
		}
		tx = account.NewWithdrawal(s.transactionIDs.Next(), acc.ID, amount, description, s.now())
		return s.journal(ctx, tx)
	})
	if err != nil {
		logger.Error("Withdraw failed", "error", err)
		return nil, err
	}

	logger.Info("Withdraw successful", "transactionID", tx.ID, "balance", acc.Balance.String())
	s.emit(ctx, events.NewFundsWithdrawn(acc.ID, tx.ID, amount, acc.Balance))
	return tx.Clone(), nil
}

// Transfer moves amount between two accounts as one atomic step and journals
// a single TRANSFER. The same-account check runs before any lookup; the
// source account is looked up and status-checked before the destination.
func (s *Service) Transfer(
	ctx context.Context,
	fromID, toID int64,
	amount decimal.Decimal,
	description string,
) (*account.Transaction, error) {
	logger := s.logger.With("from", fromID, "to", toID, "amount", amount.String())
	logger.Info("Transfer started")

	if fromID == toID {
		logger.Error("Transfer failed: same account")
		return nil, fmt.Errorf("%w: account %d", account.ErrCannotTransferToSameAccount, fromID)
	}

	var tx *account.Transaction
	_, _, err := s.accounts.UpdatePair(ctx, fromID, toID, func(from, to *account.Account) error {
		if err := from.TransferTo(to, amount); err != nil {
			return err
		}
		tx = account.NewTransfer(s.transactionIDs.Next(), from.ID, to.ID, amount, description, s.now())
		return s.journal(ctx, tx)
	})
	if err != nil {
		logger.Error("Transfer failed", "error", err)
		return nil, err
	}

	logger.Info("Transfer successful", "transactionID", tx.ID)
	s.emit(ctx, events.NewFundsTransferred(fromID, toID, tx.ID, amount))
	return tx.Clone(), nil
}

// journal appends tx from inside a critical section. An append failure is an
// internal error and aborts the surrounding mutation.
func (s *Service) journal(ctx context.Context, tx *account.Transaction) error {
	if err := s.transactions.Append(ctx, tx); err != nil {
		return fmt.Errorf("journal append transaction %d: %w", tx.ID, err)
	}
	return nil
}
