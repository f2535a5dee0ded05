package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated means a command requiring a session was rejected
	// by the server. Callers surface a generic "please sign in" outcome.
	ErrUnauthenticated = errors.New("authentication required")

	ErrNotFound = errors.New("resource not found")
)

// Error is a business-rule rejection carried back from the server.
// Message is the server's own wording and is displayed verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthenticated
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// DisplayMessage picks the best user-facing message for err: the server's
// message when one exists, fallback otherwise (transport and unknown
// errors carry nothing worth showing).
func DisplayMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
