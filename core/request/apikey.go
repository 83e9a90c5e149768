package request

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/apikit/core/handler"
)

// tokenScheme is the Authorization header scheme carrying the API key.
const tokenScheme = "Token token="

// apikeyParam is the fallback parameter consulted when the
// Authorization header carries no key.
const apikeyParam = "apikey"

// APIKey enforces API key presence for the exchange. The candidate key
// is read from the Authorization header ("Token token=<key>") and falls
// back to the "apikey" parameter.
//
// Without a validator, any non-empty key passes. With one, the key must
// validate; a nil validator is a programming error and terminates with
// 500. Missing or rejected keys terminate with 403 "unauthorized".
// Returns nil when the exchange may continue:
//
//	if resp := ctx.APIKey(store.IsValidKey); resp != nil {
//		return resp
//	}
func (c *Context) APIKey(validate ...func(key string) bool) handler.Response {
	key := c.candidateKey()
	if key == "" {
		return c.Respond(http.StatusForbidden, "unauthorized")
	}

	if len(validate) > 0 {
		fn := validate[0]
		if fn == nil {
			return c.Respond(http.StatusInternalServerError, "api key validator is not usable")
		}
		if !fn(key) {
			return c.Respond(http.StatusForbidden, "unauthorized")
		}
	}
	return nil
}

// candidateKey extracts the API key candidate for the exchange.
func (c *Context) candidateKey() string {
	if auth, ok := c.Header("Authorization"); ok {
		if _, after, found := strings.Cut(auth, tokenScheme); found {
			if key := strings.TrimSpace(after); key != "" {
				return key
			}
		}
	}
	return c.Param(apikeyParam)
}
