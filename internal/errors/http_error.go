package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
	// Detail carries the underlying failure text, surfaced to clients as "message".
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// WithDetail returns a copy of e carrying detail.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Helpers for common errors
var (
	ErrBadRequest       = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrMethodNotAllowed = func() *HTTPError {
		return NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed. Please use POST.")
	}
	ErrRequestTooLarge = func() *HTTPError {
		return NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
	}
	ErrInternal = func(detail string) *HTTPError {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error").WithDetail(detail)
	}
)
