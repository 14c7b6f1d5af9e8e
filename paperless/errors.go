package paperless

import (
	"errors"
	"fmt"
)

// Sentinel errors for client construction.
var (
	// ErrMissingToken is returned when a client is created without an API token.
	ErrMissingToken = errors.New("paperless: api token is required")

	// ErrInvalidBaseURL is returned when the base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("paperless: invalid base URL")
)

// APIError is any failure talking to the Paperless API: transport errors,
// non-2xx statuses, and malformed responses. The underlying cause, when one
// exists, is preserved for errors.Is/As.
type APIError struct {
	Method     string
	Path       string
	StatusCode int // zero when the request never completed
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("paperless: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("paperless: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
