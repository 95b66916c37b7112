package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks a transport-level failure: the backend could
	// not be reached or the connection broke mid-response.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized maps a 401 from the backend.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps a 404 from the backend.
	ErrNotFound = errors.New("not found")
)

// BackendError is any other non-2xx backend response.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
}

// Message returns the server-provided message for an error, or the
// fallback when the server gave none.
func Message(err error, fallback string) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
