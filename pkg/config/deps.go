package config

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/sequence"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	AccountRepo     account.Repository
	TransactionRepo transaction.Repository
	AccountIDs      *sequence.Generator
	TransactionIDs  *sequence.Generator
	EventBus        eventbus.Bus
	Logger          *slog.Logger
	Config          *App
}
