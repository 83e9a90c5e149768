package request

import (
	"time"

	"github.com/dmitrymomot/apikit/core/handler"
	"github.com/dmitrymomot/apikit/core/response"
)

// Respond produces the terminal response for the exchange: the standard
// JSON envelope carrying the status code, the elapsed time since the
// context was constructed, and the optional payload (merged when it is
// a map, placed under "message" otherwise). When CORS is enabled for
// the exchange, the allow-any-origin header is added.
//
// The first Respond call wins. Later calls on the same context return
// nil and render nothing, so an exchange that has already terminated
// produces no further observable output.
func (c *Context) Respond(code int, payload ...any) handler.Response {
	if c.responded {
		return nil
	}
	c.responded = true

	var p any
	if len(payload) > 0 {
		p = payload[0]
	}

	resp := response.Envelope(code, p, time.Since(c.start).Seconds())
	if c.corsEnabled {
		resp = response.AllowAnyOrigin(resp)
	}
	return resp
}
