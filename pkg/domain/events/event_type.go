package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Account lifecycle events
	EventTypeAccountCreated       EventType = "Account.Created"
	EventTypeAccountStatusChanged EventType = "Account.StatusChanged"
	EventTypeAccountOwnerChanged  EventType = "Account.OwnerChanged"
	EventTypeAccountClosed        EventType = "Account.Closed"

	// Balance events
	EventTypeFundsDeposited   EventType = "Funds.Deposited"
	EventTypeFundsWithdrawn   EventType = "Funds.Withdrawn"
	EventTypeFundsTransferred EventType = "Funds.Transferred"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// All returns every event type the ledger emits.
func All() []EventType {
	return []EventType{
		EventTypeAccountCreated,
		EventTypeAccountStatusChanged,
		EventTypeAccountOwnerChanged,
		EventTypeAccountClosed,
		EventTypeFundsDeposited,
		EventTypeFundsWithdrawn,
		EventTypeFundsTransferred,
	}
}
