package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an application-level failure reported through the response
// envelope. The platform never exposes a typed error taxonomy; callers get
// the human-readable message plus optional per-field validation errors.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, msg)
}

// IsAuthError reports whether err is an envelope failure caused by a
// missing, invalid, or expired session.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether err is an envelope failure for a missing
// resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
