package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/amirasaad/ledger/pkg/service/account"
)

// App bundles the configured services the HTTP layer is built on.
type App struct {
	Deps           *config.Deps
	Config         *config.App
	AccountService *account.Service
	Idempotency    *idempotency.Tracker
}

// New wires the ledger service and registers event handlers on the bus.
// A nil logger falls back to slog.Default.
func New(deps *config.Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		d := *deps
		d.Logger = slog.Default()
		deps = &d
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()
	app.AccountService = account.NewService(*deps)
	app.Idempotency = idempotency.NewTracker(cfg.Idempotency.TTL)
	return app
}

// PurgeIdempotencyKeys drops expired idempotency results every interval until
// ctx is done.
func (a *App) PurgeIdempotencyKeys(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.Idempotency.Purge(); n > 0 {
				a.Deps.Logger.Debug("Purged expired idempotency keys", "count", n)
			}
		}
	}
}
