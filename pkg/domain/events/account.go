package events

// AccountCreated is emitted after a new account is stored.
type AccountCreated struct {
	Base
	AccountNumber string
	OwnerName     string
	Currency      string
}

// AccountStatusChanged is emitted when an account moves between ACTIVE and BLOCKED.
// Closing emits AccountClosed instead.
type AccountStatusChanged struct {
	Base
	From string
	To   string
}

// AccountOwnerChanged is emitted after the owner name is updated.
type AccountOwnerChanged struct {
	Base
	From string
	To   string
}

// AccountClosed is emitted when an account reaches its terminal state.
type AccountClosed struct {
	Base
}

func (e AccountCreated) Type() string       { return EventTypeAccountCreated.String() }
func (e AccountStatusChanged) Type() string { return EventTypeAccountStatusChanged.String() }
func (e AccountOwnerChanged) Type() string  { return EventTypeAccountOwnerChanged.String() }
func (e AccountClosed) Type() string        { return EventTypeAccountClosed.String() }

// NewAccountCreated creates a new AccountCreated event.
func NewAccountCreated(accountID int64, number, owner, currency string, opts ...Option) *AccountCreated {
	return &AccountCreated{
		Base:          newBase(accountID, opts),
		AccountNumber: number,
		OwnerName:     owner,
		Currency:      currency,
	}
}

// NewAccountStatusChanged creates a new AccountStatusChanged event.
func NewAccountStatusChanged(accountID int64, from, to string, opts ...Option) *AccountStatusChanged {
	return &AccountStatusChanged{Base: newBase(accountID, opts), From: from, To: to}
}

// NewAccountOwnerChanged creates a new AccountOwnerChanged event.
func NewAccountOwnerChanged(accountID int64, from, to string, opts ...Option) *AccountOwnerChanged {
	return &AccountOwnerChanged{Base: newBase(accountID, opts), From: from, To: to}
}

// NewAccountClosed creates a new AccountClosed event.
func NewAccountClosed(accountID int64, opts ...Option) *AccountClosed {
	return &AccountClosed{Base: newBase(accountID, opts)}
}
