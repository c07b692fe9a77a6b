package errors

import "net/http"

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery layers build these in mapError; pkg/response renders them.
type HTTPError struct {
	Status  int
	Message string
	Details string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewHTTPErrorWithDetails creates an HTTPError carrying an underlying detail string.
func NewHTTPErrorWithDetails(status int, message, details string) *HTTPError {
	return &HTTPError{Status: status, Message: message, Details: details}
}

// NewValidationError is a 400 shorthand.
func NewValidationError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewInternalError is a 500 shorthand keeping the underlying error as details.
func NewInternalError(message string, cause error) *HTTPError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return NewHTTPErrorWithDetails(http.StatusInternalServerError, message, details)
}
