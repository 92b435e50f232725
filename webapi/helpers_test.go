package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	infratransaction "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/sequence"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:         "test",
		Server:      &config.Server{Host: "localhost", Port: 3000},
		Log:         &config.Log{Format: "text"},
		RateLimit:   &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Idempotency: &config.Idempotency{Header: "Idempotency-Key", TTL: time.Minute},
		Ledger:      &config.Ledger{},
	}
}

func newTestApp(t testing.TB, cfg *config.App) (*fiber.App, *infraeventbus.MemoryEventBus) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infraeventbus.NewWithMemory(logger, infraeventbus.WithRecording())
	deps := &config.Deps{
		AccountRepo:     infraaccount.New(),
		TransactionRepo: infratransaction.New(),
		AccountIDs:      sequence.New(),
		TransactionIDs:  sequence.New(),
		EventBus:        bus,
		Logger:          logger,
		Config:          cfg,
	}
	return webapi.SetupApp(app.New(deps, cfg)), bus
}

func makeRequest(
	t testing.TB,
	app *fiber.App,
	method, path, body string,
	headers map[string]string,
) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var envelope struct {
		common.Response
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func decodeProblem(t testing.TB, resp *http.Response) common.ProblemDetails {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}
