package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/xraph/docuhook"

// Tracer provides OpenTelemetry tracing for docuhook.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new docuhook tracer.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartReconcileSpan starts a span covering one Init or Cleanup pass.
func (t *Tracer) StartReconcileSpan(ctx context.Context, op string, handlerCount int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "docuhook."+op,
		trace.WithAttributes(
			attribute.Int("docuhook.handlers", handlerCount),
		),
	)
}

// StartDispatchSpan starts a span for one inbound webhook dispatch.
func (t *Tracer) StartDispatchSpan(ctx context.Context, receiptID, handler, triggerType string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "docuhook.dispatch",
		trace.WithAttributes(
			attribute.String("docuhook.receipt_id", receiptID),
			attribute.String("docuhook.handler", handler),
			attribute.String("docuhook.trigger", triggerType),
		),
	)
}

// EndSpan ends a span, recording an error string when the operation failed.
func (t *Tracer) EndSpan(span trace.Span, errMsg string) {
	if errMsg != "" {
		span.SetAttributes(attribute.String("docuhook.error", errMsg))
	}
	span.End()
}
