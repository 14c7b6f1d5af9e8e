package docuhook

import "errors"

// Sentinel errors returned by docuhook operations.
var (
	// ErrNoClient is returned when a Hooks is created without a Paperless client.
	ErrNoClient = errors.New("docuhook: client is required")

	// ErrNoBackend is returned when a Hooks is created without an HTTP backend.
	ErrNoBackend = errors.New("docuhook: backend is required")

	// ErrNoWebhookBaseURL is returned when a Hooks is created without the
	// externally reachable base URL webhook deliveries should target.
	ErrNoWebhookBaseURL = errors.New("docuhook: webhook base URL is required")

	// ErrInvalidHandlerName is returned when a handler name is empty or not
	// URL-path safe.
	ErrInvalidHandlerName = errors.New("docuhook: invalid handler name")

	// ErrDuplicateHandler is returned when a handler name is registered twice.
	ErrDuplicateHandler = errors.New("docuhook: duplicate handler name")

	// ErrUnknownTrigger is returned when a handler is registered with a trigger
	// type outside the recognized set.
	ErrUnknownTrigger = errors.New("docuhook: unknown trigger type")

	// ErrHandlerNotFound is returned when looking up a handler by name that was
	// never registered.
	ErrHandlerNotFound = errors.New("docuhook: handler not found")
)
