package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	log "github.com/charmbracelet/log"
)

// @title Ledger API
// @version 1.0.0
// @description In-memory bank ledger: accounts, deposits, withdrawals, transfers and the transaction journal.
// @contact.name API Support
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies and seed demo data when enabled
	app, err := initializer.InitializeApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	logger := app.Deps.Logger

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app)

	go app.PurgeIdempotencyKeys(ctx, cfg.Idempotency.TTL)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		if err := fiberApp.Shutdown(); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := cfg.Server.Addr()
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}
