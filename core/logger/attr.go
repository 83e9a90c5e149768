package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety:
// log.Info("msg", logger.Error(err)) works without explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID creates an attribute for HTTP request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component identifies the subsystem producing the log record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names the lifecycle event being logged.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Query creates an attribute for raw query strings.
func Query(q string) slog.Attr {
	if q == "" {
		return slog.Attr{}
	}
	return slog.String("query", q)
}

// RemoteAddr creates an attribute for the client address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// Status creates an attribute for HTTP response status codes.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
