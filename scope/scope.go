// Package scope carries per-delivery correlation values through context.
//
// The dispatch binding stamps every inbound webhook with a receipt ID and the
// name of the handler it routed to; callbacks and their structured logs can
// read both back with Capture.
package scope

import "context"

type contextKey int

const (
	receiptKey contextKey = iota
	handlerKey
)

// WithDelivery injects the receipt ID and handler name for an inbound
// webhook delivery into the context.
func WithDelivery(ctx context.Context, receiptID, handler string) context.Context {
	ctx = context.WithValue(ctx, receiptKey, receiptID)
	return context.WithValue(ctx, handlerKey, handler)
}

// Capture extracts the receipt ID and handler name from the context.
// Returns empty strings outside a dispatch.
func Capture(ctx context.Context) (receiptID, handler string) {
	receiptID, _ = ctx.Value(receiptKey).(string)
	handler, _ = ctx.Value(handlerKey).(string)
	return receiptID, handler
}
