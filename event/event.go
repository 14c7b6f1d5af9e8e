// Package event defines the typed contexts handed to handler callbacks, one
// variant per trigger type.
package event

import (
	"context"

	"github.com/xraph/docuhook/paperless"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/trigger"
)

// Fetcher is the document access the document-bound event variants need.
// *paperless.Client satisfies it.
type Fetcher interface {
	Document(ctx context.Context, docID int) (*paperless.Document, error)
	DownloadDocument(ctx context.Context, docID int) ([]byte, error)
}

// Event is the context delivered to a handler callback. Concrete variants
// are *PayloadEvent (consumption-started, scheduled) and *DocumentEvent
// (document-added, document-updated).
type Event interface {
	// Trigger returns the trigger type that fired.
	Trigger() trigger.Type

	// Payload returns the decoded placeholder record.
	Payload() *payload.Placeholders
}

// New constructs the event variant appropriate for the trigger type.
// Document-bound triggers get a *DocumentEvent; the rest get a
// *PayloadEvent, since no document exists or is implied yet.
func New(t trigger.Type, p *payload.Placeholders, fetch Fetcher) Event {
	switch t {
	case trigger.DocumentAdded, trigger.DocumentUpdated:
		return &DocumentEvent{PayloadEvent: PayloadEvent{trig: t, pld: p}, fetch: fetch}
	default:
		return &PayloadEvent{trig: t, pld: p}
	}
}

// PayloadEvent wraps the raw decoded payload for triggers that carry no
// resolvable document (consumption-started fires before the document exists;
// scheduled implies none).
type PayloadEvent struct {
	trig trigger.Type
	pld  *payload.Placeholders
}

// Trigger returns the trigger type that fired.
func (e *PayloadEvent) Trigger() trigger.Type { return e.trig }

// Payload returns the decoded placeholder record.
func (e *PayloadEvent) Payload() *payload.Placeholders { return e.pld }

// DocumentEvent is the context for document-added and document-updated
// triggers. Document data is fetched lazily, on demand, over the API.
//
// The event holds only read-only state, so it is safe to use from whatever
// concurrency the backend adapter applies.
type DocumentEvent struct {
	PayloadEvent
	fetch Fetcher
}

// DocumentID extracts the document's numeric ID from the delivered doc_url
// placeholder.
func (e *DocumentEvent) DocumentID() (int, error) {
	return e.pld.DocumentID()
}

// Document fetches the full document record.
func (e *DocumentEvent) Document(ctx context.Context) (*paperless.Document, error) {
	docID, err := e.DocumentID()
	if err != nil {
		return nil, err
	}
	return e.fetch.Document(ctx, docID)
}

// Download fetches the document's binary content.
func (e *DocumentEvent) Download(ctx context.Context) ([]byte, error) {
	docID, err := e.DocumentID()
	if err != nil {
		return nil, err
	}
	return e.fetch.DownloadDocument(ctx, docID)
}
