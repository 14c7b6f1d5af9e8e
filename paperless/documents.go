package paperless

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Documents returns a single page of documents.
func (c *Client) Documents(ctx context.Context, page int) (*Page[Document], error) {
	var p Page[Document]
	if err := c.do(ctx, http.MethodGet, "/api/documents/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListDocuments returns every document across all pages.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	return collectPages(ctx, c.Documents)
}

// DocumentsByCustomFieldQuery returns every document matching a Paperless
// custom field query expression (e.g. ["field", "exact", "value"]).
func (c *Client) DocumentsByCustomFieldQuery(ctx context.Context, query any) ([]Document, error) {
	encoded, err := json.Marshal(query)
	if err != nil {
		return nil, &APIError{Method: http.MethodGet, Path: "/api/documents/", Err: fmt.Errorf("marshal custom field query: %w", err)}
	}

	return collectPages(ctx, func(ctx context.Context, page int) (*Page[Document], error) {
		q := url.Values{
			"page":               []string{fmt.Sprint(page)},
			"custom_field_query": []string{string(encoded)},
		}
		var p Page[Document]
		if err := c.do(ctx, http.MethodGet, "/api/documents/", q, nil, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// Document returns document metadata by ID.
func (c *Client) Document(ctx context.Context, docID int) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/", docID), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDocument replaces a document's metadata.
func (c *Client) UpdateDocument(ctx context.Context, doc *Document) (*Document, error) {
	var updated Document
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/documents/%d/", doc.ID), nil, doc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DownloadDocument returns the binary content of a document.
func (c *Client) DownloadDocument(ctx context.Context, docID int) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/download/", docID))
}

// DocumentNotes returns the notes attached to a document.
func (c *Client) DocumentNotes(ctx context.Context, docID int) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/notes/", docID), nil, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// AddNote attaches a note to a document and returns the created note.
func (c *Client) AddNote(ctx context.Context, docID int, note string) (*Note, error) {
	var notes []Note
	in := map[string]string{"note": note}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/documents/%d/notes/", docID), nil, in, &notes); err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	// The API responds with the full note list; the new note is last.
	return &notes[len(notes)-1], nil
}

// DeleteNote removes a note from a document.
func (c *Client) DeleteNote(ctx context.Context, docID, noteID int) error {
	q := url.Values{"id": []string{fmt.Sprint(noteID)}}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/documents/%d/notes/", docID), q, nil, nil)
}
