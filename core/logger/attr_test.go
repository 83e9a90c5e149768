package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/apikit/core/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error_attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, "boom", attr.Value.String())
	})

	t.Run("nil_error_is_empty_attr", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
		assert.Equal(t, slog.Attr{}, logger.Query(""))
	})

	t.Run("typed_attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
		assert.Equal(t, slog.String("path", "/users"), logger.Path("/users"))
		assert.Equal(t, slog.String("component", "http"), logger.Component("http"))
		assert.Equal(t, slog.String("event", "request"), logger.Event("request"))
		assert.Equal(t, slog.String("remote_addr", "1.2.3.4"), logger.RemoteAddr("1.2.3.4"))
		assert.Equal(t, slog.Int("status", 200), logger.Status(200))
		assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	})

	t.Run("empty_attrs_render_as_nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		log.LogAttrs(t.Context(), slog.LevelInfo, "msg",
			logger.Error(nil),
			logger.Method("GET"),
		)

		out := buf.String()
		assert.Contains(t, out, "method=GET")
		assert.NotContains(t, out, "error=")
	})
}
