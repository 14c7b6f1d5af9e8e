package paperless

import (
	"context"
	"fmt"
	"net/http"
)

// Correspondents returns a single page of correspondents.
func (c *Client) Correspondents(ctx context.Context, page int) (*Page[Correspondent], error) {
	var p Page[Correspondent]
	if err := c.do(ctx, http.MethodGet, "/api/correspondents/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCorrespondents returns every correspondent across all pages.
func (c *Client) ListCorrespondents(ctx context.Context) ([]Correspondent, error) {
	return collectPages(ctx, c.Correspondents)
}

// Correspondent returns a correspondent by ID.
func (c *Client) Correspondent(ctx context.Context, correspondentID int) (*Correspondent, error) {
	var co Correspondent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/correspondents/%d/", correspondentID), nil, nil, &co); err != nil {
		return nil, err
	}
	return &co, nil
}

// CreateCorrespondent creates a new correspondent.
func (c *Client) CreateCorrespondent(ctx context.Context, co *Correspondent) (*Correspondent, error) {
	var created Correspondent
	if err := c.do(ctx, http.MethodPost, "/api/correspondents/", nil, co, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCorrespondent replaces an existing correspondent.
func (c *Client) UpdateCorrespondent(ctx context.Context, correspondentID int, co *Correspondent) (*Correspondent, error) {
	var updated Correspondent
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/correspondents/%d/", correspondentID), nil, co, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCorrespondent deletes a correspondent by ID.
func (c *Client) DeleteCorrespondent(ctx context.Context, correspondentID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/correspondents/%d/", correspondentID), nil, nil, nil)
}
