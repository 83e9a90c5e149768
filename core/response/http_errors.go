package response

import "net/http"

// HTTPError represents a structured error response that implements the error interface.
type HTTPError struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context
}

// NewHTTPError creates a new Error with a custom message and default internal server error status.
func NewHTTPError(message string) HTTPError {
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: message,
	}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause.
func (e HTTPError) WithError(err error) HTTPError {
	if e.Details == nil {
		e.Details = map[string]any{"cause": err.Error()}
	} else {
		e.Details["cause"] = err.Error()
	}
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest = HTTPError{
		Status:  http.StatusBadRequest,
		Code:    "bad_request",
		Message: http.StatusText(http.StatusBadRequest),
	}

	ErrUnauthorized = HTTPError{
		Status:  http.StatusUnauthorized,
		Code:    "unauthorized",
		Message: http.StatusText(http.StatusUnauthorized),
	}

	ErrForbidden = HTTPError{
		Status:  http.StatusForbidden,
		Code:    "forbidden",
		Message: http.StatusText(http.StatusForbidden),
	}

	ErrNotFound = HTTPError{
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: http.StatusText(http.StatusNotFound),
	}

	ErrMethodNotAllowed = HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Code:    "method_not_allowed",
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}

	ErrUnprocessableEntity = HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "unprocessable_entity",
		Message: http.StatusText(http.StatusUnprocessableEntity),
	}

	ErrTooManyRequests = HTTPError{
		Status:  http.StatusTooManyRequests,
		Code:    "too_many_requests",
		Message: http.StatusText(http.StatusTooManyRequests),
	}

	ErrInternalServerError = HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}

	ErrServiceUnavailable = HTTPError{
		Status:  http.StatusServiceUnavailable,
		Code:    "service_unavailable",
		Message: http.StatusText(http.StatusServiceUnavailable),
	}
)

// httpErrorsByStatus maps status codes to their predefined errors for
// conversion of plain errors in the error handlers.
var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}
