package response

import (
	"net/http"

	"github.com/dmitrymomot/apikit/core/handler"
)

// Error returns a handler response that propagates the given error.
// Useful when a handler wants the error handler layer to shape the
// final response instead of rendering one itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
