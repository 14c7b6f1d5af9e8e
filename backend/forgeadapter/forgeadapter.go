// Package forgeadapter adapts an xraph/forge router as a docuhook backend.
package forgeadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/xraph/forge"

	"github.com/xraph/docuhook/backend"
	"github.com/xraph/docuhook/payload"
)

// WebhookForgeRequest binds the flat placeholder body of an inbound webhook.
type WebhookForgeRequest map[string]any

// AckForgeResponse acknowledges a processed webhook delivery.
type AckForgeResponse struct {
	Status string `description:"Processing outcome" json:"status"`
}

// Adapter registers docuhook webhook routes on a Forge router with OpenAPI
// metadata.
type Adapter struct {
	router forge.Router
	logger *slog.Logger
}

// Option configures the adapter.
type Option func(*Adapter)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// New creates an adapter over the given Forge router.
func New(router forge.Router, opts ...Option) *Adapter {
	a := &Adapter{
		router: router,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterRoute implements backend.Backend.
func (a *Adapter) RegisterRoute(path string, handler backend.JSONHandler) {
	if err := a.router.POST(path, a.webhook(handler),
		forge.WithSummary("Inbound document webhook"),
		forge.WithDescription("Receives a templated placeholder payload from the document server and dispatches it to the registered handler."),
		forge.WithRequestSchema(WebhookForgeRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Delivery processed", AckForgeResponse{}),
		forge.WithErrorResponses(),
	); err != nil {
		// Log and continue so one bad route does not take down the rest.
		a.logger.Error("failed to register webhook route", "path", path, "error", err)
	}
}

func (a *Adapter) webhook(handler backend.JSONHandler) func(forge.Context, *WebhookForgeRequest) (*AckForgeResponse, error) {
	return func(ctx forge.Context, req *WebhookForgeRequest) (*AckForgeResponse, error) {
		body := map[string]any{}
		if req != nil {
			body = map[string]any(*req)
		}

		if err := handler(ctx.Context(), body); err != nil {
			var payloadErr *payload.Error
			if errors.As(err, &payloadErr) {
				return nil, forge.BadRequest(payloadErr.Error())
			}
			return nil, forge.InternalError(err)
		}

		return &AckForgeResponse{Status: "ok"}, nil
	}
}
