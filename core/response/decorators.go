package response

import (
	"net/http"

	"github.com/dmitrymomot/apikit/core/handler"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are set before the wrapped response is rendered.
func WithHeaders(response handler.Response, headers map[string]string) handler.Response {
	if response == nil {
		return nil
	}
	if len(headers) == 0 {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return response(w, r)
	}
}

// AllowAnyOrigin wraps a response with a permissive CORS header.
// Used by request contexts that have CORS enabled for the exchange.
func AllowAnyOrigin(response handler.Response) handler.Response {
	if response == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		return response(w, r)
	}
}
