package middleware

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/gofiber/fiber/v2"
)

// HeaderReplayed marks a response that was served from the idempotency store.
const HeaderReplayed = "X-Idempotency-Hit"

// Idempotency makes requests carrying the header key replay the first
// successful response instead of running the handler again. Keys are scoped
// by method and path, so one key can be reused across different endpoints.
func Idempotency(tracker *idempotency.Tracker, header string) fiber.Handler {
	if header == "" {
		header = "Idempotency-Key"
	}
	return func(c *fiber.Ctx) error {
		key := c.Get(header)
		if key == "" {
			return c.Next()
		}
		scoped := c.Method() + " " + c.Path() + " " + key

		res, executed, err := tracker.Do(scoped, func() (idempotency.Result, error) {
			if err := c.Next(); err != nil {
				return idempotency.Result{}, err
			}
			resp := c.Response()
			return idempotency.Result{
				Status:      resp.StatusCode(),
				ContentType: string(resp.Header.ContentType()),
				Body:        append([]byte(nil), resp.Body()...),
			}, nil
		})
		if err != nil {
			return err
		}
		if executed {
			if res.Successful() {
				slog.Debug("Idempotency key saved", "key", key, "path", c.Path())
			}
			return nil
		}

		slog.Info("Idempotency hit, replaying stored response", "key", key, "path", c.Path())
		c.Set(HeaderReplayed, "true")
		c.Set(fiber.HeaderContentType, res.ContentType)
		return c.Status(res.Status).Send(res.Body)
	}
}
