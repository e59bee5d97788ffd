package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the transport boundary. Callers match them with
// errors.Is.
var (
	// ErrUnavailable means the backend could not be reached at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is returned only by Login, when the backend
	// rejects the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthExpired is returned when any bearer-authenticated call comes
	// back 401. Components must route it into the session controller's
	// OnAuthExpired transition instead of showing it to the user.
	ErrAuthExpired = errors.New("authentication expired")
)

// ValidationError carries a backend-reported rejection of the request
// itself (HTTP 400/404/409). The message is meant for the user.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServerError is any other non-2xx response.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: status %d", e.Status)
	}
	return fmt.Sprintf("server error: status %d: %s", e.Status, e.Message)
}
