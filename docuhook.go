package docuhook

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xraph/docuhook/backend"
	"github.com/xraph/docuhook/event"
	"github.com/xraph/docuhook/ledger"
	"github.com/xraph/docuhook/ledger/memory"
	"github.com/xraph/docuhook/observability"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/workflow"
)

// Client is the remote access a Hooks instance needs: workflow reconciliation
// against the Paperless API plus the document fetches events perform lazily.
// *paperless.Client satisfies it.
type Client interface {
	event.Fetcher

	ListWorkflowNames(ctx context.Context) (map[string]struct{}, error)
	CreateWorkflow(ctx context.Context, wf *workflow.Workflow) (*workflow.Workflow, error)
	DeleteWorkflow(ctx context.Context, workflowID int) error
}

// Hooks is the root document-event hook registry and reconciler.
type Hooks struct {
	config    Config
	client    Client
	backend   backend.Backend
	ledger    ledger.Store
	validator *payload.Validator
	logger    *slog.Logger
	metrics   *observability.Metrics
	tracer    *observability.Tracer

	mu       sync.Mutex
	handlers []*Handler
	byName   map[string]*Handler
}

// Option configures a Hooks instance.
type Option func(*Hooks) error

// New creates a new Hooks with the given options. A client, a backend, and a
// webhook base URL are required; the ledger defaults to the in-memory store.
func New(opts ...Option) (*Hooks, error) {
	h := &Hooks{
		config:    DefaultConfig(),
		validator: payload.NewValidator(),
		logger:    slog.Default(),
		byName:    make(map[string]*Handler),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if h.client == nil {
		return nil, ErrNoClient
	}
	if h.backend == nil {
		return nil, ErrNoBackend
	}
	if h.config.WebhookBaseURL == "" {
		return nil, ErrNoWebhookBaseURL
	}
	if h.ledger == nil {
		h.ledger = memory.New()
	}
	return h, nil
}

// Handlers returns a snapshot of the registered handlers in registration order.
func (h *Hooks) Handlers() []*Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Handler, len(h.handlers))
	copy(out, h.handlers)
	return out
}

// Handler returns the registered handler with the given name.
func (h *Hooks) Handler(name string) (*Handler, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hd, ok := h.byName[name]
	if !ok {
		return nil, ErrHandlerNotFound
	}
	return hd, nil
}

// Ledger returns the underlying ledger store.
func (h *Hooks) Ledger() ledger.Store {
	return h.ledger
}
