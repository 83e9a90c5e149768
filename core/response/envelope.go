package response

import (
	"math"
	"net/http"

	"github.com/dmitrymomot/apikit/core/handler"
)

// Envelope builds the kit's standard JSON response body and returns a
// renderer for it.
//
// Every body carries the status code and the elapsed wall-clock time of
// the exchange in seconds, rounded to two decimals:
//
//	{
//	  "code": 200,
//	  "response_time_seconds": 0.02
//	}
//
// A string-keyed map payload (map[string]any or map[string]string) is
// merged into the body, overwriting the standard keys on collision.
// Any other non-nil payload, including structs, lands under "message".
func Envelope(code int, payload any, elapsed float64) handler.Response {
	if code == 0 {
		code = http.StatusOK
	}

	body := map[string]any{
		"code":                  code,
		"response_time_seconds": roundSeconds(elapsed),
	}
	switch p := payload.(type) {
	case nil:
	case map[string]any:
		for k, v := range p {
			body[k] = v
		}
	case map[string]string:
		for k, v := range p {
			body[k] = v
		}
	default:
		body["message"] = payload
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, code, body)
	}
}

// roundSeconds rounds elapsed time to two decimals and clamps negative
// values (clock skew on overridden start times) to zero.
func roundSeconds(elapsed float64) float64 {
	if elapsed < 0 {
		return 0
	}
	return math.Round(elapsed*100) / 100
}
