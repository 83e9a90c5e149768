// Package expect implements the parameter expectation mini-language used
// to declare, validate, and coerce request parameters in one pass.
//
// # Grammar
//
// Each expectation is a compact string:
//
//	spec := name [ "?" [default] ] [ "|" type ]
//	type := "int" | "integer" | "float" | "double" | "string" |
//	        "bool" | "boolean" | "array"
//
// Examples:
//
//	"email"           required, untyped
//	"age|int"         required integer
//	"page?"           optional, no default
//	"limit?10|int"    optional integer, defaults to 10
//	"tags|array"      required array (JSON-parsed when sent as text)
//
// # Processing Model
//
// Apply processes every spec independently against a copy of the
// parameter mapping and accumulates errors into two buckets: missing
// required parameters and present-but-wrongly-typed parameters. It
// never fails fast, so a single round trip reports every problem:
//
//	res := expect.Apply(params, "email", "age|int", "limit?10|int")
//	if res.Failed() {
//		// res.Missing, res.Invalid hold the accumulated errors
//	}
//	params = res.Params // validated, coerced copy
//
// Type coercion is validated with a decimal-string round-trip: a cast
// succeeds only when the value's string form survives it unchanged.
// "12abc" cast to int yields 12, which does not round-trip back to
// "12abc", so it is reported as invalid instead of silently truncated.
//
// Missing detection runs before coercion and treats falsy values
// (empty string, "0", nil, false, zero) as absent, except boolean
// false/"0" and integer zero, which are legitimate values. An empty
// array likewise counts as missing rather than invalid.
//
// Handlers normally reach this package through request.Context's
// Expecting method, which turns a failed Result into a terminal 422
// response.
package expect
