package docuhook

import (
	"context"
	"fmt"

	"github.com/xraph/docuhook/event"
	"github.com/xraph/docuhook/id"
	"github.com/xraph/docuhook/internal/entity"
	"github.com/xraph/docuhook/trigger"
)

// HandlerFunc is a handler callback. The concrete event type depends on the
// trigger: document-added and document-updated deliver *event.DocumentEvent,
// the rest *event.PayloadEvent.
type HandlerFunc func(ctx context.Context, evt event.Event) error

// DocumentFunc is a document-bound callback used by the OnDocumentAdded and
// OnDocumentUpdated registration helpers.
type DocumentFunc func(ctx context.Context, evt *event.DocumentEvent) error

// Handler is one registered document-event handler. It is created by Register
// and owned by the Hooks instance; fields are read-only after registration.
type Handler struct {
	entity.Entity

	// ID is the docuhook-minted handler identity.
	ID id.ID

	// Name is the unique handler name. It becomes the webhook path suffix and,
	// prefixed, the remote workflow name.
	Name string

	// Trigger is the document lifecycle event the handler fires on.
	Trigger trigger.Type

	// Filters constrain when the remote workflow fires.
	Filters trigger.Filters

	fn HandlerFunc

	// route is the webhook path registered on the backend.
	route string

	// routeBound guards against registering the same route twice when Init
	// runs more than once.
	routeBound bool
}

// Register adds a handler for the given trigger type. The name must be unique
// and URL-path safe; filters are validated against the recognized trigger
// filter set at registration time, not at Init.
func (h *Hooks) Register(name string, t trigger.Type, fn HandlerFunc, filters trigger.Filters) (*Handler, error) {
	if !validHandlerName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHandlerName, name)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrigger, t)
	}
	if filters == nil {
		filters = trigger.Filters{}
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateHandler, name)
	}

	hd := &Handler{
		Entity:  entity.New(),
		ID:      id.NewHandlerID(),
		Name:    name,
		Trigger: t,
		Filters: filters,
		fn:      fn,
		route:   "/" + name,
	}
	h.handlers = append(h.handlers, hd)
	h.byName[name] = hd

	h.logger.Debug("handler registered",
		"handler_id", hd.ID,
		"name", name,
		"trigger", t.String(),
	)
	return hd, nil
}

// OnConsumptionStarted registers a handler for the consumption-started
// trigger. The delivered event is a *event.PayloadEvent: consumption fires
// before a document record exists.
func (h *Hooks) OnConsumptionStarted(name string, fn HandlerFunc, filters trigger.Filters) (*Handler, error) {
	return h.Register(name, trigger.ConsumptionStarted, fn, filters)
}

// OnDocumentAdded registers a document-bound handler for the document-added
// trigger.
func (h *Hooks) OnDocumentAdded(name string, fn DocumentFunc, filters trigger.Filters) (*Handler, error) {
	return h.Register(name, trigger.DocumentAdded, documentOnly(fn), filters)
}

// OnDocumentUpdated registers a document-bound handler for the
// document-updated trigger.
func (h *Hooks) OnDocumentUpdated(name string, fn DocumentFunc, filters trigger.Filters) (*Handler, error) {
	return h.Register(name, trigger.DocumentUpdated, documentOnly(fn), filters)
}

// OnScheduled registers a handler for the scheduled trigger.
func (h *Hooks) OnScheduled(name string, fn HandlerFunc, filters trigger.Filters) (*Handler, error) {
	return h.Register(name, trigger.Scheduled, fn, filters)
}

// documentOnly adapts a DocumentFunc to the generic HandlerFunc. The dispatch
// binding always constructs a *event.DocumentEvent for document-bound
// triggers, so the assertion holds by construction.
func documentOnly(fn DocumentFunc) HandlerFunc {
	return func(ctx context.Context, evt event.Event) error {
		de, ok := evt.(*event.DocumentEvent)
		if !ok {
			return fmt.Errorf("docuhook: event for trigger %s is not document-bound", evt.Trigger())
		}
		return fn(ctx, de)
	}
}

// validHandlerName accepts non-empty names made of letters, digits, hyphens,
// and underscores, keeping both the webhook path and the workflow name clean.
func validHandlerName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
