package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	StatusCode int
	// Message is the optional "message" or "msg" field of the body.
	Message string
	// Body is the raw response body.
	Body []byte
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

// IsUnauthorized reports whether the backend rejected the credentials or token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusUnprocessableEntity)
}
