// Package handler defines the core contracts for HTTP request processing
// in the kit: a minimal request context interface, a deferred response
// renderer, and type-safe handler and middleware function types.
//
// # Core Types
//
// The package defines several small types that the rest of the kit builds on:
//
//	import "github.com/dmitrymomot/apikit/core/handler"
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with
// HTTP-specific methods:
//
//	type Context interface {
//		context.Context                      // Standard context methods
//		Request() *http.Request              // Access to HTTP request
//		ResponseWriter() http.ResponseWriter // Access to response writer
//		Param(key string) string             // Get request parameters
//		SetValue(key, val any)               // Store request-scoped values
//	}
//
// # Termination Semantics
//
// Handlers do not write to the response writer directly. They return a
// Response function, and the wrapping layer (see core/request.Wrap)
// renders it after the handler chain completes. Within a handler body,
// the kit's guard methods (verb guards, Expecting, APIKey) return a
// non-nil Response when the exchange must terminate early:
//
//	func createUser(ctx *request.Context) handler.Response {
//		if resp := ctx.Require(http.MethodPost); resp != nil {
//			return resp // 405, nothing else runs
//		}
//		if resp := ctx.Expecting("email", "age|int"); resp != nil {
//			return resp // 422 with accumulated validation errors
//		}
//		return ctx.Respond(http.StatusCreated, map[string]any{
//			"email": ctx.Value("email"),
//		})
//	}
//
// Because the body is written only by the returned Response, partial
// output produced before an error path can never reach the client.
//
// # Middleware Composition
//
// Middleware wraps handlers in the usual onion model. Wrappers are
// applied in reverse order so the first middleware runs first:
//
//	func chain[C handler.Context](
//		h handler.HandlerFunc[C],
//		middlewares ...handler.Middleware[C],
//	) handler.HandlerFunc[C] {
//		for i := len(middlewares) - 1; i >= 0; i-- {
//			h = middlewares[i](h)
//		}
//		return h
//	}
//
// Ready-made middleware (CORS, request ID, logging, API key) lives in
// the middleware package.
package handler
