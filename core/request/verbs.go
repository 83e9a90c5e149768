package request

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/apikit/core/handler"
)

// Require guards the exchange against any verb but the given one. On a
// mismatch it returns a terminal 405 response with the message
// "<ACTUAL_METHOD> not supported" (or the custom message, when given);
// on a match it returns nil and processing continues:
//
//	if resp := ctx.Require(http.MethodPost); resp != nil {
//		return resp
//	}
func (c *Context) Require(verb string, message ...string) handler.Response {
	if strings.EqualFold(verb, c.method) {
		return nil
	}
	msg := c.method + " not supported"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return c.Respond(http.StatusMethodNotAllowed, msg)
}

// On dispatches to the handler when the request method matches the
// verb, returning the handler's response. On a mismatch it returns nil
// without invoking the handler. That silent skip means several On calls can
// be chained to route by verb within a single handler body:
//
//	if resp := ctx.On(http.MethodGet, listUsers); resp != nil {
//		return resp
//	}
//	if resp := ctx.On(http.MethodPost, createUser); resp != nil {
//		return resp
//	}
//	return ctx.Respond(http.StatusMethodNotAllowed)
//
// Note the asymmetry with Require: a mismatch here is not an error.
func (c *Context) On(verb string, h HandlerFunc) handler.Response {
	if h == nil || !strings.EqualFold(verb, c.method) {
		return nil
	}
	return h(c)
}

// Get guards or dispatches on GET: with no handler it behaves like
// Require(http.MethodGet), with a handler like On(http.MethodGet, h).
func (c *Context) Get(h ...HandlerFunc) handler.Response {
	return c.guardOrDispatch(http.MethodGet, h)
}

// Post guards or dispatches on POST.
func (c *Context) Post(h ...HandlerFunc) handler.Response {
	return c.guardOrDispatch(http.MethodPost, h)
}

// Put guards or dispatches on PUT.
func (c *Context) Put(h ...HandlerFunc) handler.Response {
	return c.guardOrDispatch(http.MethodPut, h)
}

// Patch guards or dispatches on PATCH.
func (c *Context) Patch(h ...HandlerFunc) handler.Response {
	return c.guardOrDispatch(http.MethodPatch, h)
}

// Delete guards or dispatches on DELETE.
func (c *Context) Delete(h ...HandlerFunc) handler.Response {
	return c.guardOrDispatch(http.MethodDelete, h)
}

func (c *Context) guardOrDispatch(verb string, h []HandlerFunc) handler.Response {
	if len(h) == 0 || h[0] == nil {
		return c.Require(verb)
	}
	return c.On(verb, h[0])
}
