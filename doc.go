// Package docuhook provides event-driven handlers for Paperless-ngx document
// lifecycle events.
//
// Docuhook is a library — not a service. Import it into your application to
// react to document consumption, addition, and updates: it registers your
// handlers, synthesizes one remote webhook workflow per handler on the
// Paperless server, and dispatches inbound webhook deliveries back to your
// callbacks as typed events with lazy document access.
//
// Key features:
//   - One remote workflow per handler, created idempotently by name
//   - A ledger of created workflows so Cleanup removes exactly what this
//     process created (memory by default, Redis opt-in)
//   - Typed events: document-bound triggers get lazy Document/Download access
//   - Pluggable HTTP backends (net/http ServeMux, xraph/forge)
//   - Optional shared-secret header verification on inbound deliveries
//
// Quick start:
//
//	client, err := paperless.NewClient("http://paperless:8000", token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	adapter := httpmux.New()
//	h, err := docuhook.New(
//	    docuhook.WithClient(client),
//	    docuhook.WithBackend(adapter),
//	    docuhook.WithWebhookBaseURL("http://myapp:9000/hooks"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h.OnDocumentAdded("archive-invoices", func(ctx context.Context, evt *event.DocumentEvent) error {
//	    doc, err := evt.Document(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    log.Printf("new document: %s", doc.Title)
//	    return nil
//	}, nil)
//
//	if err := h.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Cleanup(context.Background())
//
//	http.ListenAndServe(":9000", adapter)
package docuhook
