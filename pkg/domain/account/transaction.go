package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransactionType is returned for types outside DEPOSIT, WITHDRAWAL, TRANSFER.
var ErrInvalidTransactionType = errors.New("invalid transaction type")

// TransactionType classifies a journal entry.
type TransactionType string

// Transaction types.
const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// ParseTransactionType converts a raw string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
	return t, nil
}

// DefaultDescription is used when the caller supplies no description.
func (t TransactionType) DefaultDescription() string {
	switch t {
	case TransactionTypeDeposit:
		return "Account deposit"
	case TransactionTypeWithdrawal:
		return "Account withdrawal"
	case TransactionTypeTransfer:
		return "Transfer between accounts"
	}
	return ""
}

// TransactionStatus is the outcome recorded on a journal entry.
type TransactionStatus string

// TransactionStatusSuccess is the only persisted status: failed operations
// never produce a transaction.
const TransactionStatusSuccess TransactionStatus = "SUCCESS"

// Transaction is an immutable journal entry. FromAccountID is nil for
// deposits (external source) and ToAccountID is nil for withdrawals
// (external sink).
type Transaction struct {
	ID            int64
	Type          TransactionType
	Amount        decimal.Decimal
	FromAccountID *int64
	ToAccountID   *int64
	Timestamp     time.Time
	Description   string
	Status        TransactionStatus
}

func newTransaction(
	id int64,
	txType TransactionType,
	amount decimal.Decimal,
	from, to *int64,
	description string,
	at time.Time,
) *Transaction {
	if description == "" {
		description = txType.DefaultDescription()
	}
	return &Transaction{
		ID:            id,
		Type:          txType,
		Amount:        amount,
		FromAccountID: from,
		ToAccountID:   to,
		Timestamp:     at,
		Description:   description,
		Status:        TransactionStatusSuccess,
	}
}

// NewDeposit builds the journal entry for a deposit into accountID.
func NewDeposit(id, accountID int64, amount decimal.Decimal, description string, at time.Time) *Transaction {
	return newTransaction(id, TransactionTypeDeposit, amount, nil, &accountID, description, at)
}

// NewWithdrawal builds the journal entry for a withdrawal from accountID.
func NewWithdrawal(id, accountID int64, amount decimal.Decimal, description string, at time.Time) *Transaction {
	return newTransaction(id, TransactionTypeWithdrawal, amount, &accountID, nil, description, at)
}

// NewTransfer builds the journal entry for a transfer between two accounts.
func NewTransfer(id, fromID, toID int64, amount decimal.Decimal, description string, at time.Time) *Transaction {
	return newTransaction(id, TransactionTypeTransfer, amount, &fromID, &toID, description, at)
}

// Involves reports whether the transaction references accountID on either side.
func (t *Transaction) Involves(accountID int64) bool {
	return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
		(t.ToAccountID != nil && *t.ToAccountID == accountID)
}

// Clone returns a deep snapshot copy; the account id pointers are not shared.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	cp := *t
	if t.FromAccountID != nil {
		from := *t.FromAccountID
		cp.FromAccountID = &from
	}
	if t.ToAccountID != nil {
		to := *t.ToAccountID
		cp.ToAccountID = &to
	}
	return &cp
}
