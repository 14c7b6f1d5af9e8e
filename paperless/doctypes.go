package paperless

import (
	"context"
	"fmt"
	"net/http"
)

// DocumentTypes returns a single page of document types.
func (c *Client) DocumentTypes(ctx context.Context, page int) (*Page[DocumentType], error) {
	var p Page[DocumentType]
	if err := c.do(ctx, http.MethodGet, "/api/document_types/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListDocumentTypes returns every document type across all pages.
func (c *Client) ListDocumentTypes(ctx context.Context) ([]DocumentType, error) {
	return collectPages(ctx, c.DocumentTypes)
}

// DocumentTypeByID returns a document type by ID.
func (c *Client) DocumentTypeByID(ctx context.Context, documentTypeID int) (*DocumentType, error) {
	var dt DocumentType
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/document_types/%d/", documentTypeID), nil, nil, &dt); err != nil {
		return nil, err
	}
	return &dt, nil
}

// DocumentTypeByName finds a document type by name. Returns nil when no type
// matches.
func (c *Client) DocumentTypeByName(ctx context.Context, name string) (*DocumentType, error) {
	types, err := c.ListDocumentTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].Name == name {
			return &types[i], nil
		}
	}
	return nil, nil
}

// CreateDocumentType creates a new document type.
func (c *Client) CreateDocumentType(ctx context.Context, dt *DocumentType) (*DocumentType, error) {
	var created DocumentType
	if err := c.do(ctx, http.MethodPost, "/api/document_types/", nil, dt, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDocumentType replaces an existing document type.
func (c *Client) UpdateDocumentType(ctx context.Context, documentTypeID int, dt *DocumentType) (*DocumentType, error) {
	var updated DocumentType
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/document_types/%d/", documentTypeID), nil, dt, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocumentType deletes a document type by ID.
func (c *Client) DeleteDocumentType(ctx context.Context, documentTypeID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/document_types/%d/", documentTypeID), nil, nil, nil)
}
