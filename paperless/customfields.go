package paperless

import (
	"context"
	"fmt"
	"net/http"
)

// CustomFields returns a single page of custom field definitions.
func (c *Client) CustomFields(ctx context.Context, page int) (*Page[CustomField], error) {
	var p Page[CustomField]
	if err := c.do(ctx, http.MethodGet, "/api/custom_fields/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCustomFields returns every custom field definition across all pages.
func (c *Client) ListCustomFields(ctx context.Context) ([]CustomField, error) {
	return collectPages(ctx, c.CustomFields)
}

// CustomFieldByName finds a custom field by name. Returns nil when no field
// matches.
func (c *Client) CustomFieldByName(ctx context.Context, name string) (*CustomField, error) {
	fields, err := c.ListCustomFields(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i], nil
		}
	}
	return nil, nil
}

// CreateCustomField creates a new global custom field.
func (c *Client) CreateCustomField(ctx context.Context, name, dataType string) (*CustomField, error) {
	var cf CustomField
	in := map[string]string{"name": name, "data_type": dataType}
	if err := c.do(ctx, http.MethodPost, "/api/custom_fields/", nil, in, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// DeleteCustomField deletes a custom field definition by ID.
func (c *Client) DeleteCustomField(ctx context.Context, fieldID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/custom_fields/%d/", fieldID), nil, nil, nil)
}

// SetDocumentCustomField adds or updates a custom field instance on a
// document and returns the updated document.
func (c *Client) SetDocumentCustomField(ctx context.Context, doc *Document, fieldID int, value any) (*Document, error) {
	instances := make([]CustomFieldInstance, len(doc.CustomFields))
	copy(instances, doc.CustomFields)

	updated := false
	for i := range instances {
		if instances[i].Field == fieldID {
			instances[i].Value = value
			updated = true
			break
		}
	}
	if !updated {
		instances = append(instances, CustomFieldInstance{Field: fieldID, Value: value})
	}

	return c.patchDocumentCustomFields(ctx, doc.ID, instances)
}

// RemoveDocumentCustomField deletes a custom field instance from a document
// and returns the updated document. Returns the document unchanged when the
// field was not set.
func (c *Client) RemoveDocumentCustomField(ctx context.Context, doc *Document, fieldID int) (*Document, error) {
	filtered := make([]CustomFieldInstance, 0, len(doc.CustomFields))
	for _, inst := range doc.CustomFields {
		if inst.Field != fieldID {
			filtered = append(filtered, inst)
		}
	}
	if len(filtered) == len(doc.CustomFields) {
		return doc, nil
	}

	return c.patchDocumentCustomFields(ctx, doc.ID, filtered)
}

func (c *Client) patchDocumentCustomFields(ctx context.Context, docID int, instances []CustomFieldInstance) (*Document, error) {
	var updated Document
	in := map[string]any{"custom_fields": instances}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/documents/%d/", docID), nil, in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
