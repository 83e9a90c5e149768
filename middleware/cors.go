package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/apikit/core/handler"
)

// CORSConfig defines configuration options for the CORS middleware.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigins specifies allowed origins. Use "*" for all origins.
	// If empty, defaults to allowing all origins ("*")
	AllowOrigins []string

	// AllowMethods specifies allowed HTTP methods.
	// If empty, defaults to GET, HEAD, PUT, PATCH, POST, DELETE
	AllowMethods []string

	// AllowHeaders specifies allowed request headers.
	// If empty, defaults to common headers including Authorization and Content-Type
	AllowHeaders []string

	// ExposeHeaders specifies which headers are exposed to the client
	ExposeHeaders []string

	// AllowCredentials indicates whether credentials are allowed.
	// Cannot be used with wildcard origins for security reasons
	AllowCredentials bool

	// MaxAge specifies how long preflight requests can be cached (in seconds)
	MaxAge int

	// AllowOriginFunc provides custom origin validation logic.
	// Takes precedence over AllowOrigins when set.
	AllowOriginFunc func(origin string) (string, bool)
}

// CORS returns a CORS middleware with default configuration: all
// origins allowed, common methods and headers, no credentials.
//
// This is the router-level counterpart of request.Context.EnableCORS,
// which toggles the allow-any-origin header for a single exchange.
// Use the middleware when a whole router serves cross-origin clients:
//
//	wrapped := request.Wrap(h, middleware.CORS[*request.Context]())
//
// The wildcard default suits development; production deployments
// should set explicit AllowOrigins.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
// It handles preflight OPTIONS requests and decorates actual responses.
// Credentials are only allowed with specific origins, never wildcards.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	}

	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Language",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowOriginsMap := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowOriginsMap[origin] = true
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			origin := req.Header.Get("Origin")

			var allowedOrigin string
			allowed := false

			// Origin validation priority: custom function > wildcard/empty > explicit list
			if cfg.AllowOriginFunc != nil {
				allowedOrigin, allowed = cfg.AllowOriginFunc(origin)
			} else if len(cfg.AllowOrigins) == 0 || allowOriginsMap["*"] {
				allowedOrigin = "*"
				allowed = true
			} else if allowOriginsMap[origin] {
				allowedOrigin = origin
				allowed = true
			}

			// Preflight: OPTIONS + Access-Control-Request-Method header
			isPreflight := req.Method == http.MethodOptions &&
				req.Header.Get("Access-Control-Request-Method") != ""

			if isPreflight {
				requestMethod := req.Header.Get("Access-Control-Request-Method")
				requestHeaders := req.Header.Get("Access-Control-Request-Headers")
				methodAllowed := slices.Contains(cfg.AllowMethods, requestMethod)

				if !allowed || !methodAllowed {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}

				return func(w http.ResponseWriter, r *http.Request) error {
					headers := w.Header()
					headers.Set("Access-Control-Allow-Origin", allowedOrigin)
					headers.Set("Access-Control-Allow-Methods", allowMethods)

					if requestHeaders != "" {
						headers.Set("Access-Control-Allow-Headers", allowHeaders)
					}

					// Credentials must not be combined with wildcard origins.
					if cfg.AllowCredentials && allowedOrigin != "*" {
						headers.Set("Access-Control-Allow-Credentials", "true")
					}

					if cfg.MaxAge > 0 {
						headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}

					headers.Add("Vary", "Origin")
					headers.Add("Vary", "Access-Control-Request-Method")
					headers.Add("Vary", "Access-Control-Request-Headers")

					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)

			if !allowed || response == nil {
				return response
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				headers := w.Header()
				headers.Set("Access-Control-Allow-Origin", allowedOrigin)

				if cfg.AllowCredentials && allowedOrigin != "*" {
					headers.Set("Access-Control-Allow-Credentials", "true")
				}

				if exposeHeaders != "" {
					headers.Set("Access-Control-Expose-Headers", exposeHeaders)
				}

				headers.Add("Vary", "Origin")

				return response(w, r)
			}
		}
	}
}
