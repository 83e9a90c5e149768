package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/apikit/core/handler"
)

// JSON creates an application/json response with 200 OK status.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}
		return writeJSON(w, status, v)
	}
}

// writeJSON writes v as the full response body. Output is
// pretty-printed with HTML escaping disabled so forward slashes and
// markup survive intact.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	// No body for statuses that forbid one per HTTP spec.
	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
