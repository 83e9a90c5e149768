package middleware

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/request"
)

// apiKeyContextKey is used as a key for storing the accepted API key
// in request context.
type apiKeyContextKey struct{}

// APIKeyConfig configures the API key middleware.
type APIKeyConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Validator checks a candidate key. When nil, any non-empty key passes.
	Validator func(key string) bool
	// Scheme is the Authorization value prefix carrying the key
	// (default: "Token token=")
	Scheme string
	// ParamName is the fallback parameter consulted when the header
	// carries no key (default: "apikey")
	ParamName string
	// ErrorHandler shapes the rejection response
	// (default: 403 envelope with "unauthorized")
	ErrorHandler func(ctx handler.Context) handler.Response
	// StoreInContext makes the accepted key retrievable via GetAPIKey
	// (default: true when constructed via APIKey)
	StoreInContext bool
}

// APIKey creates middleware enforcing API key presence for every
// request passing through it, using the given validator. This is the
// router-level counterpart of request.Context.APIKey for protecting a
// whole handler tree:
//
//	protected := request.Wrap(h,
//		middleware.APIKey[*request.Context](store.IsValidKey),
//	)
func APIKey[C handler.Context](validator func(key string) bool) handler.Middleware[C] {
	return APIKeyWithConfig[C](APIKeyConfig{
		Validator:      validator,
		StoreInContext: true,
	})
}

// APIKeyWithConfig creates an API key middleware with custom configuration.
// The candidate key is read from the Authorization header using the
// configured scheme, falling back to the configured parameter. Missing
// or rejected keys terminate the exchange with 403.
func APIKeyWithConfig[C handler.Context](cfg APIKeyConfig) handler.Middleware[C] {
	if cfg.Scheme == "" {
		cfg.Scheme = "Token token="
	}
	if cfg.ParamName == "" {
		cfg.ParamName = "apikey"
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context) handler.Response {
			if rc, ok := any(ctx).(*request.Context); ok {
				return rc.Respond(http.StatusForbidden, "unauthorized")
			}
			return func(w http.ResponseWriter, r *http.Request) error {
				http.Error(w, "unauthorized", http.StatusForbidden)
				return nil
			}
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			key := extractAPIKey(ctx, cfg.Scheme, cfg.ParamName)
			if key == "" {
				return cfg.ErrorHandler(ctx)
			}
			if cfg.Validator != nil && !cfg.Validator(key) {
				return cfg.ErrorHandler(ctx)
			}

			if cfg.StoreInContext {
				ctx.SetValue(apiKeyContextKey{}, key)
			}
			return next(ctx)
		}
	}
}

// extractAPIKey pulls the candidate key from the Authorization header
// or the fallback parameter.
func extractAPIKey(ctx handler.Context, scheme, paramName string) string {
	if _, after, found := strings.Cut(ctx.Request().Header.Get("Authorization"), scheme); found {
		if key := strings.TrimSpace(after); key != "" {
			return key
		}
	}
	return ctx.Param(paramName)
}

// GetAPIKey retrieves the accepted API key from the request context.
// Returns the key and a boolean indicating whether it was found.
func GetAPIKey(ctx handler.Context) (string, bool) {
	key, ok := ctx.Value(apiKeyContextKey{}).(string)
	return key, ok
}
