package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers 401/403 responses. On authenticated calls the
	// session layer turns it into a cascading logout.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable covers transport failures and gateway errors.
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout is returned when the per-request deadline elapses.
	ErrTimeout = errors.New("request timed out")
)

// APIError is any remaining non-2xx response, carrying the human-readable
// message extracted from the backend's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d - %s", e.Status, e.Message)
}
