// Package app assembles the ledger application from its dependencies and
// registers the event handlers it runs.
package app

import (
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/handler/audit"
)

// setupEventBus registers all event handlers with the provided event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	auditHandler := audit.HandleLedgerEvent(a.Deps.Logger)
	for _, eventType := range events.All() {
		bus.Register(eventType, auditHandler)
	}
}
