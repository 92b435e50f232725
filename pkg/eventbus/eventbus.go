package eventbus

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// HandlerFunc processes a single event. A returned error is logged by the
// bus and never propagated to the emitter.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus defines the contract for registering handlers and emitting ledger events.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, event events.Event) error
}
