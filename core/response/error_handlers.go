package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apikit/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that returns plain text errors.
// It checks for HTTPError type first, then the statusCode interface, and defaults to 500.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses wrapped in the
// kit's structured error shape.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
