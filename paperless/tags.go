package paperless

import (
	"context"
	"fmt"
	"net/http"
)

// Tags returns a single page of tags.
func (c *Client) Tags(ctx context.Context, page int) (*Page[Tag], error) {
	var p Page[Tag]
	if err := c.do(ctx, http.MethodGet, "/api/tags/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListTags returns every tag across all pages.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	return collectPages(ctx, c.Tags)
}

// Tag returns a tag by ID.
func (c *Client) Tag(ctx context.Context, tagID int) (*Tag, error) {
	var t Tag
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tags/%d/", tagID), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TagByName finds a tag by name. Returns nil when no tag matches.
func (c *Client) TagByName(ctx context.Context, name string) (*Tag, error) {
	tags, err := c.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		if tags[i].Name == name {
			return &tags[i], nil
		}
	}
	return nil, nil
}

// CreateTag creates a new tag.
func (c *Client) CreateTag(ctx context.Context, t *Tag) (*Tag, error) {
	var created Tag
	if err := c.do(ctx, http.MethodPost, "/api/tags/", nil, t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTag replaces an existing tag.
func (c *Client) UpdateTag(ctx context.Context, tagID int, t *Tag) (*Tag, error) {
	var updated Tag
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tags/%d/", tagID), nil, t, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTag deletes a tag by ID.
func (c *Client) DeleteTag(ctx context.Context, tagID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tags/%d/", tagID), nil, nil, nil)
}
