// Package events defines the ledger events emitted after committed mutations.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything that can be dispatched on the event bus.
type Event interface {
	Type() string
}

// Base carries the fields shared by every ledger event.
type Base struct {
	ID        uuid.UUID
	AccountID int64
	Timestamp time.Time
}

// Option configures the shared fields of an event.
type Option func(*Base)

// WithID overrides the generated event id.
func WithID(id uuid.UUID) Option {
	return func(b *Base) { b.ID = id }
}

// WithTimestamp overrides the event timestamp.
func WithTimestamp(ts time.Time) Option {
	return func(b *Base) { b.Timestamp = ts }
}

func newBase(accountID int64, opts []Option) Base {
	b := Base{
		ID:        uuid.New(),
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
