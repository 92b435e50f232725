// Package audit logs every committed ledger event.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/money"
)

// ErrUnexpectedEvent is returned for events the audit trail does not know.
var ErrUnexpectedEvent = errors.New("unexpected event type")

// HandleLedgerEvent returns a handler that writes one structured audit line per event.
func HandleLedgerEvent(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With(
			"handler", "audit.HandleLedgerEvent",
			"event_type", e.Type(),
		)

		attrs, err := describe(e)
		if err != nil {
			log.Error("unexpected event type", "event_type", fmt.Sprintf("%T", e))
			return err
		}
		log.InfoContext(ctx, "📝 [AUDIT] Ledger event committed", attrs...)
		return nil
	}
}

func describe(e events.Event) ([]any, error) {
	switch ev := e.(type) {
	case *events.AccountCreated:
		return []any{
			"event_id", ev.ID,
			"account_id", ev.AccountID,
			"account_number", ev.AccountNumber,
			"currency", ev.Currency,
		}, nil
	case *events.FundsDeposited:
		return []any{
			"event_id", ev.ID,
			"account_id", ev.AccountID,
			"transaction_id", ev.TransactionID,
			"amount", money.Format(ev.Amount),
			"balance", money.Format(ev.Balance),
		}, nil
	case *events.FundsWithdrawn:
		return []any{
			"event_id", ev.ID,
			"account_id", ev.AccountID,
			"transaction_id", ev.TransactionID,
			"amount", money.Format(ev.Amount),
			"balance", money.Format(ev.Balance),
		}, nil
	case *events.FundsTransferred:
		return []any{
			"event_id", ev.ID,
			"from_account_id", ev.AccountID,
			"to_account_id", ev.ToAccountID,
			"transaction_id", ev.TransactionID,
			"amount", money.Format(ev.Amount),
		}, nil
	case *events.AccountStatusChanged:
		return []any{"event_id", ev.ID, "account_id", ev.AccountID, "from", ev.From, "to", ev.To}, nil
	case *events.AccountOwnerChanged:
		return []any{"event_id", ev.ID, "account_id", ev.AccountID}, nil
	case *events.AccountClosed:
		return []any{"event_id", ev.ID, "account_id", ev.AccountID}, nil
	}
	return nil, ErrUnexpectedEvent
}
