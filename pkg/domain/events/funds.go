package events

import "github.com/shopspring/decimal"

// FundsDeposited is emitted after a deposit is journaled.
type FundsDeposited struct {
	Base
	TransactionID int64
	Amount        decimal.Decimal
	Balance       decimal.Decimal // balance after the deposit
}

// FundsWithdrawn is emitted after a withdrawal is journaled.
type FundsWithdrawn struct {
	Base
	TransactionID int64
	Amount        decimal.Decimal
	Balance       decimal.Decimal // balance after the withdrawal
}

// FundsTransferred is emitted after a transfer is journaled.
// Base.AccountID is the source account.
type FundsTransferred struct {
	Base
	ToAccountID   int64
	TransactionID int64
	Amount        decimal.Decimal
}

func (e FundsDeposited) Type() string   { return EventTypeFundsDeposited.String() }
func (e FundsWithdrawn) Type() string   { return EventTypeFundsWithdrawn.String() }
func (e FundsTransferred) Type() string { return EventTypeFundsTransferred.String() }

// NewFundsDeposited creates a new FundsDeposited event.
func NewFundsDeposited(accountID, txID int64, amount, balance decimal.Decimal, opts ...Option) *FundsDeposited {
	return &FundsDeposited{
		Base:          newBase(accountID, opts),
		TransactionID: txID,
		Amount:        amount,
		Balance:       balance,
	}
}

// NewFundsWithdrawn creates a new FundsWithdrawn event.
func NewFundsWithdrawn(accountID, txID int64, amount, balance decimal.Decimal, opts ...Option) *FundsWithdrawn {
	return &FundsWithdrawn{
		Base:          newBase(accountID, opts),
		TransactionID: txID,
		Amount:        amount,
		Balance:       balance,
	}
}

// NewFundsTransferred creates a new FundsTransferred event.
func NewFundsTransferred(fromID, toID, txID int64, amount decimal.Decimal, opts ...Option) *FundsTransferred {
	return &FundsTransferred{
		Base:          newBase(fromID, opts),
		ToAccountID:   toID,
		TransactionID: txID,
		Amount:        amount,
	}
}
