package request

import (
	"net/http"

	"github.com/dmitrymomot/apikit/core/expect"
	"github.com/dmitrymomot/apikit/core/handler"
)

// Expecting validates and coerces the request's parameters against a
// batch of expectation specs (see the expect package for the grammar).
//
// All specs are processed before any outcome is decided, so the client
// sees every validation problem in one round trip. On failure it
// returns a terminal 422 response whose body carries the accumulated
// buckets (empty buckets omitted):
//
//	{
//	  "code": 422,
//	  "response_time_seconds": 0.01,
//	  "missing params": ["email"],
//	  "invalid type": [
//	    {"param": "age", "expecting": "int", "received": "string", "value": "12abc"}
//	  ]
//	}
//
// On success it atomically replaces the context's parameter mapping
// with the validated copy and returns nil.
func (c *Context) Expecting(specs ...string) handler.Response {
	res := expect.Apply(c.params, specs...)
	if res.Failed() {
		body := make(map[string]any, 2)
		if len(res.Missing) > 0 {
			body["missing params"] = res.Missing
		}
		if len(res.Invalid) > 0 {
			body["invalid type"] = res.Invalid
		}
		return c.Respond(http.StatusUnprocessableEntity, body)
	}
	c.params = res.Params
	return nil
}
