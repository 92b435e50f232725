package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountBlocked is returned when a balance-mutating operation targets an account that is not ACTIVE.
	ErrAccountBlocked = errors.New("account is blocked or closed")

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal or transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount is missing, not positive, or has more than two fractional digits.
	ErrInvalidAmount = money.ErrInvalidAmount

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted from an account to itself.
	ErrCannotTransferToSameAccount = errors.New("cannot transfer to same account")

	// ErrAccountHasBalance is returned when closing an account whose balance is not zero.
	ErrAccountHasBalance = errors.New("account has non-zero balance")

	// ErrAccountAlreadyClosed is returned when a status or owner change targets a CLOSED account.
	ErrAccountAlreadyClosed = errors.New("account is already closed")

	// ErrNilAccount is returned when a nil account is provided to a transfer.
	ErrNilAccount = errors.New("nil account")

	// ErrInvalidOwner is returned when the owner name is blank.
	ErrInvalidOwner = errors.New("owner name must not be blank")

	// ErrInvalidStatus is returned for status values outside ACTIVE, BLOCKED, CLOSED.
	ErrInvalidStatus = errors.New("invalid account status")

	// ErrUnsupportedCurrency is returned for currencies outside the supported set.
	ErrUnsupportedCurrency = money.ErrUnsupportedCurrency
)

// NumberPrefix is the fixed 8-digit prefix of every account number.
const NumberPrefix = "40817810"

// Status is the lifecycle state of an account.
type Status string

// Account lifecycle states. CLOSED is terminal.
const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
	StatusClosed  Status = "CLOSED"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusBlocked, StatusClosed:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Number derives the account number for id: NumberPrefix followed by the id
// zero-padded to 12 digits.
func Number(id int64) string {
	return fmt.Sprintf("%s%012d", NumberPrefix, id)
}

// Account is a ledger account. It is the aggregate that guards its own
// balance and lifecycle rules.
//
// Invariants:
//   - Balance is never negative and carries at most two fractional digits.
//   - ID, AccountNumber, Currency and CreatedAt never change after creation.
//   - Balance changes only while Status is ACTIVE.
//   - Once CLOSED, neither status nor owner can change.
type Account struct {
	ID            int64
	AccountNumber string
	Balance       decimal.Decimal
	Currency      money.Code
	Status        Status
	CreatedAt     time.Time
	OwnerName     string
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        int64
	ownerName string
	currency  money.Code
	balance   decimal.Decimal
	status    Status
	createdAt time.Time
}

// New creates a new Builder with defaults: zero balance, ACTIVE status,
// USD currency and the current time as creation timestamp.
func New() *Builder {
	return &Builder{
		currency:  money.USD,
		balance:   decimal.Zero,
		status:    StatusActive,
		createdAt: time.Now().UTC(),
	}
}

// WithID sets the ID for the account being built. The account number is derived from it.
func (b *Builder) WithID(id int64) *Builder {
	b.id = id
	return b
}

// WithOwnerName sets the owner name. This is a mandatory field.
func (b *Builder) WithOwnerName(name string) *Builder {
	b.ownerName = name
	return b
}

// WithCurrency sets the currency for the account being built.
func (b *Builder) WithCurrency(code money.Code) *Builder {
	b.currency = code
	return b
}

// WithBalance sets the initial balance. This should only be used for
// hydrating an existing account or for test setup.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithStatus sets the initial status. This should only be used for
// hydrating an existing account or for test setup.
func (b *Builder) WithStatus(status Status) *Builder {
	b.status = status
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates all invariants and returns the new Account.
func (b *Builder) Build() (*Account, error) {
	if b.id <= 0 {
		return nil, errors.New("account id must be positive")
	}
	if strings.TrimSpace(b.ownerName) == "" {
		return nil, ErrInvalidOwner
	}
	if !b.currency.IsSupported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(b.currency))
	}
	if !b.status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(b.status))
	}
	if b.balance.IsNegative() || money.Scale(b.balance) > money.MaxScale {
		return nil, fmt.Errorf("%w: opening balance %s", ErrInvalidAmount, b.balance)
	}
	return &Account{
		ID:            b.id,
		AccountNumber: Number(b.id),
		Balance:       b.balance,
		Currency:      b.currency,
		Status:        b.status,
		CreatedAt:     b.createdAt,
		OwnerName:     b.ownerName,
	}, nil
}

// Clone returns a snapshot copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// IsActive reports whether balance mutations are permitted.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// IsClosed reports whether the account reached its terminal state.
func (a *Account) IsClosed() bool {
	return a.Status == StatusClosed
}

func (a *Account) validateActive() error {
	if !a.IsActive() {
		return fmt.Errorf("%w: account %d is %s", ErrAccountBlocked, a.ID, a.Status)
	}
	return nil
}

func (a *Account) validateFunds(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("%w: account %d", ErrInsufficientFunds, a.ID)
	}
	return nil
}

// ValidateDeposit checks all business invariants for a deposit.
// Order: status, then amount.
func (a *Account) ValidateDeposit(amount decimal.Decimal) error {
	if err := a.validateActive(); err != nil {
		return err
	}
	return money.ValidateAmount(amount)
}

// Deposit credits amount to the balance after ValidateDeposit succeeds.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.ValidateDeposit(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// ValidateWithdraw checks all business invariants for a withdrawal.
// Invariants enforced:
//   - Account must be ACTIVE.
//   - Amount must be positive with at most two fractional digits.
//   - Cannot withdraw more than the current balance.
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	if err := a.validateActive(); err != nil {
		return err
	}
	if err := money.ValidateAmount(amount); err != nil {
		return err
	}
	return a.validateFunds(amount)
}

// Withdraw debits amount from the balance after ValidateWithdraw succeeds.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// ValidateTransfer ensures that a transfer from this account to dest is valid.
// Checks run in order: distinct accounts, source status, destination status,
// amount, source funds.
func (a *Account) ValidateTransfer(dest *Account, amount decimal.Decimal) error {
	if a == nil || dest == nil {
		return ErrNilAccount
	}
	if a.ID == dest.ID {
		return ErrCannotTransferToSameAccount
	}
	if err := a.validateActive(); err != nil {
		return err
	}
	if err := dest.validateActive(); err != nil {
		return err
	}
	if err := money.ValidateAmount(amount); err != nil {
		return err
	}
	return a.validateFunds(amount)
}

// TransferTo moves amount from a to dest. Both balances change together or not at all.
func (a *Account) TransferTo(dest *Account, amount decimal.Decimal) error {
	if err := a.ValidateTransfer(dest, amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Sub(amount)
	dest.Balance = dest.Balance.Add(amount)
	return nil
}

// ChangeStatus moves the account to status.
// A CLOSED account rejects every further status change, and closing requires
// a zero balance.
func (a *Account) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
	}
	if a.IsClosed() {
		return fmt.Errorf("%w: account %d", ErrAccountAlreadyClosed, a.ID)
	}
	if status == StatusClosed && !a.Balance.IsZero() {
		return fmt.Errorf("%w: account %d holds %s", ErrAccountHasBalance, a.ID, money.Format(a.Balance))
	}
	a.Status = status
	return nil
}

// ChangeOwner renames the account owner. Closed accounts keep their last owner.
func (a *Account) ChangeOwner(name string) error {
	if a.IsClosed() {
		return fmt.Errorf("%w: account %d", ErrAccountAlreadyClosed, a.ID)
	}
	if strings.TrimSpace(name) == "" {
		return ErrInvalidOwner
	}
	a.OwnerName = name
	return nil
}

// Close soft-closes the account. The balance check runs before the
// already-closed check.
func (a *Account) Close() error {
	if !a.Balance.IsZero() {
		return fmt.Errorf("%w: account %d holds %s", ErrAccountHasBalance, a.ID, money.Format(a.Balance))
	}
	if a.IsClosed() {
		return fmt.Errorf("%w: account %d", ErrAccountAlreadyClosed, a.ID)
	}
	a.Status = StatusClosed
	return nil
}
