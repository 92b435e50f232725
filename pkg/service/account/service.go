// Package account provides the ledger service: the only component allowed to
// mutate accounts and append to the transaction journal.
//
// Every mutating operation runs its read-validate-mutate-journal sequence
// inside the account store's per-account critical section, so concurrent
// operations on one account are serialized while operations on different
// accounts proceed in parallel. Returned accounts and transactions are
// snapshots.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	repotransaction "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/sequence"
)

// Service provides business logic for ledger operations: account creation,
// deposits, withdrawals, transfers, history queries and lifecycle changes.
type Service struct {
	accounts       repoaccount.Repository
	transactions   repotransaction.Repository
	accountIDs     *sequence.Generator
	transactionIDs *sequence.Generator
	eventBus       eventbus.Bus
	logger         *slog.Logger
	now            func() time.Time
}

// NewService creates a new Service with the provided dependencies.
// Missing id generators are created fresh, so two services built from
// zero-value Deps never share state.
func NewService(deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	accountIDs := deps.AccountIDs
	if accountIDs == nil {
		accountIDs = sequence.New()
	}
	transactionIDs := deps.TransactionIDs
	if transactionIDs == nil {
		transactionIDs = sequence.New()
	}
	return &Service{
		accounts:       deps.AccountRepo,
		transactions:   deps.TransactionRepo,
		accountIDs:     accountIDs,
		transactionIDs: transactionIDs,
		eventBus:       deps.EventBus,
		logger:         logger.With("service", "ledger"),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// emit publishes an event after the operation has committed. Bus failures are
// logged only; they never change the outcome of the operation.
func (s *Service) emit(ctx context.Context, e events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(ctx, e); err != nil {
		s.logger.Warn("event emit failed", "type", e.Type(), "error", err)
	}
}
