package request

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/logger"
	"github.com/dmitrymomot/apikit/core/response"
)

// HandlerFunc is a handler operating on the kit's default context.
type HandlerFunc = handler.HandlerFunc[*Context]

// Middleware wraps HandlerFunc values operating on the default context.
type Middleware = handler.Middleware[*Context]

// ErrorHandler handles render errors for the default context.
type ErrorHandler = handler.ErrorHandler[*Context]

// contextKey locates the exchange's Context inside the request context.
type contextKey struct{}

// WrapConfig configures the Wrap adapter.
type WrapConfig struct {
	// ErrorHandler receives render errors (default: response.JSONErrorHandler).
	ErrorHandler ErrorHandler
	// Logger records panics that can no longer reach the client
	// (default: slog.Default()).
	Logger *slog.Logger
	// ContextOptions are applied to every constructed context
	// (start time, route params, CORS).
	ContextOptions []Option
}

// Wrap adapts a HandlerFunc to net/http with default configuration.
// One Context is constructed per exchange and made retrievable through
// FromContext, so there is no process-wide request state: concurrent
// exchanges each get their own instance.
func Wrap(h HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	return WrapWithConfig(WrapConfig{}, h, middlewares...)
}

// WrapWithConfig adapts a HandlerFunc to net/http. The middleware chain
// is applied in order (first middleware runs first). The handler's
// returned Response is rendered after the chain completes; a nil
// Response renders nothing. Panics in the chain are recovered and
// routed to the error handler unless the response was already written.
func WrapWithConfig(cfg WrapConfig, h HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	errorHandler := cfg.ErrorHandler
	if errorHandler == nil {
		errorHandler = response.JSONErrorHandler[*Context]
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := New(ww, r, cfg.ContextOptions...)
		ctx.r = ctx.r.WithContext(context.WithValue(ctx.r.Context(), contextKey{}, ctx))

		defer func() {
			if p := recover(); p != nil {
				if ww.Written() {
					// Too late to change the response; leave a trace.
					log.LogAttrs(r.Context(), slog.LevelError, "panic after response written",
						logger.Component("request"),
						logger.Method(r.Method),
						logger.Path(r.URL.Path),
						slog.Any("panic", p),
					)
					return
				}
				errorHandler(ctx, fmt.Errorf("panic: %v\n%s", p, debug.Stack()))
			}
		}()

		resp := h(ctx)
		if resp == nil {
			return
		}
		if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
			if !ww.Written() {
				errorHandler(ctx, err)
			}
		}
	}
}

// FromContext returns the exchange's request context, if any. This is
// the per-exchange accessor: nested code reached from a wrapped handler
// can recover the active Context without global state.
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}

// FromRequest returns the exchange's request context stored on r.
func FromRequest(r *http.Request) (*Context, bool) {
	return FromContext(r.Context())
}
