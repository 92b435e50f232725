package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

// CreateAccount opens a new ACTIVE account with a zero balance.
// Owner and currency are preconditions; a failed precondition consumes no id.
func (s *Service) CreateAccount(
	ctx context.Context,
	ownerName string,
	currencyCode money.Code,
) (*account.Account, error) {
	logger := s.logger.With("owner", ownerName, "currency", currencyCode)
	logger.Info("CreateAccount started")

	if strings.TrimSpace(ownerName) == "" {
		logger.Error("CreateAccount failed: invalid owner")
		return nil, account.ErrInvalidOwner
	}
	if !currencyCode.IsSupported() {
		logger.Error("CreateAccount failed: unsupported currency")
		return nil, fmt.Errorf("%w: %q", account.ErrUnsupportedCurrency, string(currencyCode))
	}

	acc, err := account.New().
		WithID(s.accountIDs.Next()).
		WithOwnerName(ownerName).
		WithCurrency(currencyCode).
		WithCreatedAt(s.now()).
		Build()
	if err != nil {
		logger.Error("CreateAccount failed: domain error", "error", err)
		return nil, err
	}
	if err = s.accounts.Create(ctx, acc); err != nil {
		logger.Error("CreateAccount failed: repo create error", "error", err)
		return nil, err
	}

	logger.Info("CreateAccount successful", "accountID", acc.ID, "accountNumber", acc.AccountNumber)
	s.emit(ctx, events.NewAccountCreated(acc.ID, acc.AccountNumber, acc.OwnerName, acc.Currency.String()))
	return acc, nil
}

// GetAccount retrieves a snapshot of the account.
func (s *Service) GetAccount(ctx context.Context, id int64) (*account.Account, error) {
	acc, err := s.accounts.Get(ctx, id)
	if err != nil {
		s.logger.Debug("GetAccount failed", "accountID", id, "error", err)
		return nil, err
	}
	return acc, nil
}

// GetAllAccounts lists snapshots of every account, ordered by id.
func (s *Service) GetAllAccounts(ctx context.Context) ([]*account.Account, error) {
	return s.accounts.List(ctx)
}

// GetBalance returns the current balance of the account.
func (s *Service) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	acc, err := s.GetAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance, nil
}

// UpdateAccountStatus moves the account to status. CLOSED accounts reject
// every change, and closing requires a zero balance. Requesting the current
// status is a no-op that emits nothing.
func (s *Service) UpdateAccountStatus(
	ctx context.Context,
	id int64,
	status account.Status,
) (*account.Account, error) {
	logger := s.logger.With("accountID", id, "status", status)
	logger.Info("UpdateAccountStatus started")

	var previous account.Status
	acc, err := s.accounts.Update(ctx, id, func(acc *account.Account) error {
		previous = acc.Status
		return acc.ChangeStatus(status)
	})
	if err != nil {
		logger.Error("UpdateAccountStatus failed", "error", err)
		return nil, err
	}

	logger.Info("UpdateAccountStatus successful", "previous", previous)
	switch {
	case previous == acc.Status:
	case acc.Status == account.StatusClosed:
		s.emit(ctx, events.NewAccountClosed(acc.ID))
	default:
		s.emit(ctx, events.NewAccountStatusChanged(acc.ID, string(previous), string(acc.Status)))
	}
	return acc, nil
}

// UpdateAccountOwner renames the owner of a non-CLOSED account.
func (s *Service) UpdateAccountOwner(ctx context.Context, id int64, ownerName string) (*account.Account, error) {
	logger := s.logger.With("accountID", id)
	logger.Info("UpdateAccountOwner started")

	var previous string
	acc, err := s.accounts.Update(ctx, id, func(acc *account.Account) error {
		previous = acc.OwnerName
		return acc.ChangeOwner(ownerName)
	})
	if err != nil {
		logger.Error("UpdateAccountOwner failed", "error", err)
		return nil, err
	}

	logger.Info("UpdateAccountOwner successful")
	if previous != acc.OwnerName {
		s.emit(ctx, events.NewAccountOwnerChanged(acc.ID, previous, acc.OwnerName))
	}
	return acc, nil
}

// DeleteAccount soft-closes the account. Accounts are never removed; the
// balance check runs before the already-closed check.
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	logger := s.logger.With("accountID", id)
	logger.Info("DeleteAccount started")

	if _, err := s.accounts.Update(ctx, id, func(acc *account.Account) error {
		return acc.Close()
	}); err != nil {
		logger.Error("DeleteAccount failed", "error", err)
		return err
	}

	logger.Info("DeleteAccount successful")
	s.emit(ctx, events.NewAccountClosed(id))
	return nil
}
