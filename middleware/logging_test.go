package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/request"
	"github.com/dmitrymomot/apikit/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs_one_record_per_exchange", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := request.Wrap(func(c *request.Context) handler.Response {
			return c.Respond(http.StatusCreated)
		}, middleware.LoggingWithLogger[*request.Context](log))

		serve(t, h, httptest.NewRequest(http.MethodPost, "/users?limit=5", nil))

		out := buf.String()
		assert.Contains(t, out, "request finished")
		assert.Contains(t, out, "method=POST")
		assert.Contains(t, out, "path=/users")
		assert.Contains(t, out, `query="limit=5"`)
		assert.Contains(t, out, "status=201")
		assert.Contains(t, out, "component=http")
	})

	t.Run("includes_request_id_when_present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := request.Wrap(func(c *request.Context) handler.Response {
			return c.Respond(http.StatusOK)
		},
			middleware.RequestIDWithConfig[*request.Context](middleware.RequestIDConfig{
				Generator: func() string { return "req-1" },
			}),
			middleware.LoggingWithLogger[*request.Context](log),
		)

		serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), "request_id=req-1")
	})

	t.Run("slow_requests_log_at_warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := request.Wrap(func(c *request.Context) handler.Response {
			time.Sleep(20 * time.Millisecond)
			return c.Respond(http.StatusOK)
		}, middleware.LoggingWithConfig[*request.Context](middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: 10 * time.Millisecond,
		}))

		serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("skip_suppresses_logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := request.Wrap(func(c *request.Context) handler.Response {
			return c.Respond(http.StatusOK)
		}, middleware.LoggingWithConfig[*request.Context](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/health"
			},
		}))

		serve(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Zero(t, buf.Len())
	})

	t.Run("nil_handler_response_still_logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := request.Wrap(func(c *request.Context) handler.Response {
			return nil
		}, middleware.LoggingWithLogger[*request.Context](log))

		serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), "request finished")
		assert.Contains(t, buf.String(), "status=200")
	})
}
