package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default
// configuration: one structured record per exchange with method, path,
// status, and duration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

				var err error
				if response != nil {
					err = response(recorder, r)
				}

				elapsed := time.Since(start)
				level := cfg.LogLevel
				if elapsed >= cfg.SlowRequestThreshold {
					level = slog.LevelWarn
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request finished",
					logger.Component(cfg.Component),
					logger.Event("request"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.Query(req.URL.RawQuery),
					logger.RemoteAddr(req.RemoteAddr),
					logger.Status(recorder.status),
					logger.Duration(elapsed),
					logger.RequestID(requestID),
					logger.Error(err),
				)
				return err
			}
		}
	}
}

// statusRecorder captures the status code written by the response.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
