package docuhook

import (
	"log/slog"

	"github.com/xraph/docuhook/backend"
	"github.com/xraph/docuhook/ledger"
	"github.com/xraph/docuhook/observability"
)

// WithClient sets the Paperless API client for the Hooks instance.
func WithClient(c Client) Option {
	return func(h *Hooks) error {
		h.client = c
		return nil
	}
}

// WithBackend sets the HTTP backend adapter inbound webhooks are routed through.
func WithBackend(b backend.Backend) Option {
	return func(h *Hooks) error {
		h.backend = b
		return nil
	}
}

// WithWebhookBaseURL sets the externally reachable base URL webhook
// deliveries target; each handler listens at this URL plus its name.
func WithWebhookBaseURL(baseURL string) Option {
	return func(h *Hooks) error {
		h.config.WebhookBaseURL = baseURL
		return nil
	}
}

// WithLedger sets the store tracking workflows this process created.
// Defaults to the in-memory store.
func WithLedger(s ledger.Store) Option {
	return func(h *Hooks) error {
		h.ledger = s
		return nil
	}
}

// WithLogger sets the structured logger for the Hooks instance.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hooks) error {
		h.logger = logger
		return nil
	}
}

// WithNamePrefix sets the prefix prepended to handler names to form remote
// workflow names.
func WithNamePrefix(prefix string) Option {
	return func(h *Hooks) error {
		h.config.NamePrefix = prefix
		return nil
	}
}

// WithWorkflowOrder sets the order value assigned to synthesized workflows.
func WithWorkflowOrder(order int) Option {
	return func(h *Hooks) error {
		h.config.WorkflowOrder = order
		return nil
	}
}

// WithSharedSecret attaches the given secret to every synthesized webhook
// action as a static header. Pair it with the matching adapter option (e.g.
// httpmux.WithSecret) so inbound deliveries are verified before dispatch.
// Use signature.GenerateSecret to mint one.
func WithSharedSecret(secret string) Option {
	return func(h *Hooks) error {
		h.config.SharedSecret = secret
		return nil
	}
}

// WithMetrics enables metric instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Hooks) error {
		h.metrics = m
		return nil
	}
}

// WithTracer enables OpenTelemetry tracing.
func WithTracer(t *observability.Tracer) Option {
	return func(h *Hooks) error {
		h.tracer = t
		return nil
	}
}
