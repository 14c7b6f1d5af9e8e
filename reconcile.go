package docuhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/docuhook/backend"
	"github.com/xraph/docuhook/event"
	"github.com/xraph/docuhook/id"
	"github.com/xraph/docuhook/internal/entity"
	"github.com/xraph/docuhook/ledger"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/scope"
	"github.com/xraph/docuhook/signature"
	"github.com/xraph/docuhook/trigger"
	"github.com/xraph/docuhook/workflow"
)

// Init reconciles the registered handlers against the remote server: it binds
// one webhook route per handler on the backend and creates a remote workflow
// for every handler whose workflow name is not already present.
//
// The critical path:
//  1. No handlers registered: warn and return without touching the server.
//  2. List remote workflow names once; a listing failure aborts Init so a
//     transient outage cannot cause duplicate creations.
//  3. Bind each handler's webhook route (idempotent across repeated Init).
//  4. Create each absent workflow; per-item failures are logged and skipped
//     so one bad definition does not block the rest.
//  5. Record every successful creation in the ledger for Cleanup.
func (h *Hooks) Init(ctx context.Context) error {
	handlers := h.Handlers()

	if len(handlers) == 0 {
		h.logger.Warn("no handlers registered, skipping workflow reconciliation")
		return nil
	}

	if h.tracer != nil {
		spanCtx, span := h.tracer.StartReconcileSpan(ctx, "init", len(handlers))
		ctx = spanCtx
		defer span.End()
	}

	names, err := h.client.ListWorkflowNames(ctx)
	if err != nil {
		return fmt.Errorf("docuhook: list remote workflows: %w", err)
	}

	created := 0
	for _, hd := range handlers {
		h.bindRoute(hd)

		workflowName := h.config.NamePrefix + hd.Name
		if _, exists := names[workflowName]; exists {
			h.logger.Debug("workflow already present, skipping",
				"workflow", workflowName,
				"handler", hd.Name,
			)
			continue
		}

		wf, err := h.synthesizeWorkflow(hd, workflowName)
		if err != nil {
			h.logger.Error("failed to synthesize workflow",
				"workflow", workflowName,
				"handler", hd.Name,
				"error", err,
			)
			continue
		}

		remote, err := h.client.CreateWorkflow(ctx, wf)
		if err != nil {
			h.logger.Error("failed to create workflow",
				"workflow", workflowName,
				"handler", hd.Name,
				"error", err,
			)
			continue
		}
		created++

		if err := h.ledger.Append(ctx, ledger.Entry{
			Entity:     entity.New(),
			WorkflowID: remote.ID,
			Name:       remote.Name,
		}); err != nil {
			h.logger.Error("failed to record created workflow in ledger",
				"workflow", remote.Name,
				"workflow_id", remote.ID,
				"error", err,
			)
		}

		if h.metrics != nil {
			h.metrics.WorkflowsCreated.Inc()
		}

		h.logger.Info("workflow created",
			"workflow", remote.Name,
			"workflow_id", remote.ID,
			"trigger", hd.Trigger.String(),
		)
	}

	if h.metrics != nil {
		h.metrics.HandlersRegistered.Set(float64(len(handlers)))
	}

	h.logger.Info("reconciliation complete",
		"handlers", len(handlers),
		"created", created,
		"existing", len(handlers)-created,
	)
	return nil
}

// Cleanup deletes every workflow this process created, as recorded in the
// ledger, and clears the ledger. Workflows that predate this process or were
// created by other means are never touched. Deletion failures are logged and
// do not stop the pass; the ledger is cleared unconditionally.
func (h *Hooks) Cleanup(ctx context.Context) error {
	if h.tracer != nil {
		spanCtx, span := h.tracer.StartReconcileSpan(ctx, "cleanup", len(h.Handlers()))
		ctx = spanCtx
		defer span.End()
	}

	entries, err := h.ledger.Entries(ctx)
	if err != nil {
		return fmt.Errorf("docuhook: read ledger: %w", err)
	}

	for _, e := range entries {
		if err := h.client.DeleteWorkflow(ctx, e.WorkflowID); err != nil {
			h.logger.Error("failed to delete workflow",
				"workflow", e.Name,
				"workflow_id", e.WorkflowID,
				"error", err,
			)
			continue
		}

		if h.metrics != nil {
			h.metrics.WorkflowsDeleted.Inc()
		}

		h.logger.Info("workflow deleted",
			"workflow", e.Name,
			"workflow_id", e.WorkflowID,
		)
	}

	if err := h.ledger.Clear(ctx); err != nil {
		return fmt.Errorf("docuhook: clear ledger: %w", err)
	}
	return nil
}

// bindRoute registers the handler's webhook route on the backend exactly once.
func (h *Hooks) bindRoute(hd *Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hd.routeBound {
		return
	}
	h.backend.RegisterRoute(hd.route, h.dispatch(hd))
	hd.routeBound = true

	h.logger.Debug("webhook route bound",
		"route", hd.route,
		"handler", hd.Name,
	)
}

// synthesizeWorkflow builds the remote workflow definition for a handler: one
// trigger carrying the handler's filters, one webhook action targeting the
// handler's route with the full placeholder template.
func (h *Hooks) synthesizeWorkflow(hd *Handler, workflowName string) (*workflow.Workflow, error) {
	trg := trigger.New(hd.Trigger)
	if err := hd.Filters.Apply(&trg); err != nil {
		return nil, err
	}

	cfg := &workflow.WebhookConfig{
		URL:       strings.TrimRight(h.config.WebhookBaseURL, "/") + "/" + hd.Name,
		UseParams: true,
		AsJSON:    true,
		Params:    payload.Template(),
	}
	if h.config.SharedSecret != "" {
		cfg.Headers = map[string]string{
			signature.TokenHeader: h.config.SharedSecret,
		}
	}

	return &workflow.Workflow{
		Name:     workflowName,
		Order:    h.config.WorkflowOrder,
		Enabled:  true,
		Triggers: []trigger.Trigger{trg},
		Actions: []workflow.Action{
			{Type: workflow.ActionWebhookWithConfig, Webhook: cfg},
		},
	}, nil
}

// dispatch builds the backend.JSONHandler that turns one inbound webhook body
// into a typed event and invokes the handler's callback.
func (h *Hooks) dispatch(hd *Handler) backend.JSONHandler {
	return func(ctx context.Context, body map[string]any) error {
		receiptID := id.NewReceiptID().String()
		ctx = scope.WithDelivery(ctx, receiptID, hd.Name)

		start := time.Now()

		var span trace.Span
		if h.tracer != nil {
			ctx, span = h.tracer.StartDispatchSpan(ctx, receiptID, hd.Name, hd.Trigger.String())
		}

		err := h.deliver(ctx, hd, body)

		if span != nil {
			msg := ""
			if err != nil {
				msg = err.Error()
			}
			h.tracer.EndSpan(span, msg)
		}

		if h.metrics != nil {
			status := "ok"
			if err != nil {
				status = "error"
			}
			h.metrics.RecordDispatch(status, time.Since(start).Seconds())
		}

		if err != nil {
			h.logger.Error("webhook dispatch failed",
				"receipt_id", receiptID,
				"handler", hd.Name,
				"trigger", hd.Trigger.String(),
				"error", err,
			)
			return err
		}

		h.logger.Debug("webhook dispatched",
			"receipt_id", receiptID,
			"handler", hd.Name,
			"trigger", hd.Trigger.String(),
			"duration", time.Since(start),
		)
		return nil
	}
}

func (h *Hooks) deliver(ctx context.Context, hd *Handler, body map[string]any) error {
	if err := h.validator.Validate(body); err != nil {
		return err
	}

	p, err := payload.Decode(body)
	if err != nil {
		return err
	}

	evt := event.New(hd.Trigger, p, h.client)
	return hd.fn(ctx, evt)
}
