// Package request provides the kit's per-exchange request context: a
// lightweight helper for building JSON HTTP APIs that wraps one inbound
// request and exposes verb guards, parameter access, declarative
// validation, API key enforcement, and envelope response emission.
//
// # Lifecycle
//
// One Context exists per exchange. The Wrap adapter constructs it,
// threads it through the middleware chain, renders the returned
// response, and discards it: no request state outlives the exchange
// and nothing is shared between concurrent requests:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/users", request.Wrap(usersHandler))
//
// Code reached from a wrapped handler can recover the active context
// from the standard context tree:
//
//	if ctx, ok := request.FromContext(r.Context()); ok { ... }
//
// # Parameters
//
// Parameters are captured once at construction: the query string on
// GET, the body (form or JSON object) on POST, and the union of query,
// body, and route parameters on any other verb. Values are scalars or
// arrays; ParamValue returns arrays truthy-filtered and scalars raw,
// and SetParam overwrites unconditionally.
//
// # Guards and Termination
//
// Verb guards, Expecting, and APIKey either return nil (continue) or a
// terminal response that ends the exchange. The two guard forms are
// deliberately asymmetric: Require treats a mismatch as fatal (405),
// while On silently skips so handlers can chain verb dispatch:
//
//	func usersHandler(ctx *request.Context) handler.Response {
//		if resp := ctx.APIKey(); resp != nil {
//			return resp
//		}
//		if resp := ctx.On(http.MethodGet, listUsers); resp != nil {
//			return resp
//		}
//		if resp := ctx.Post(createUser); resp != nil {
//			return resp
//		}
//		return ctx.Require(http.MethodGet)
//	}
//
//	func createUser(ctx *request.Context) handler.Response {
//		if resp := ctx.Expecting("email", "age|int", "plan?free"); resp != nil {
//			return resp
//		}
//		return ctx.Respond(http.StatusCreated, map[string]any{
//			"email": ctx.ParamValue("email"),
//			"plan":  ctx.ParamValue("plan"),
//		})
//	}
//
// Every terminal response shares the same JSON envelope (code,
// response_time_seconds, payload) produced by the response package.
// Because bodies are written only when the final Response renders,
// nothing a handler does before an error path reaches the client.
package request
