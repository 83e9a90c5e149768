// Package response provides declarative HTTP response constructors for
// JSON APIs built on the kit's handler.Response model.
//
// # Envelope
//
// The kit's standard body shape is produced by Envelope: every response
// carries the status code and the exchange's elapsed time, with the
// payload either merged in (maps) or placed under "message" (anything
// else):
//
//	response.Envelope(http.StatusOK, map[string]any{"user": u}, elapsed)
//	// {
//	//   "code": 200,
//	//   "response_time_seconds": 0.01,
//	//   "user": {...}
//	// }
//
//	response.Envelope(http.StatusForbidden, "unauthorized", elapsed)
//	// {
//	//   "code": 403,
//	//   "response_time_seconds": 0.01,
//	//   "message": "unauthorized"
//	// }
//
// Handlers normally reach Envelope through request.Context.Respond,
// which supplies the elapsed time and CORS decoration.
//
// # Plain Constructors
//
// JSON, JSONWithStatus, String, Status, and NoContent cover responses
// outside the envelope convention. JSON output is pretty-printed with
// HTML escaping disabled, so forward slashes are not escaped.
//
// # Errors
//
// HTTPError is a structured error carrying an HTTP status, a
// machine-readable code, and optional details. Predefined values
// (ErrBadRequest, ErrUnauthorized, ...) can be customized with the
// With* methods:
//
//	return response.Error(response.ErrNotFound.WithMessage("no such user"))
//
// JSONErrorHandler renders any error returned by a Response as a JSON
// body, converting plain errors via the statusCode interface.
package response
