package paperless

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xraph/docuhook/workflow"
)

// Workflows returns a single page of workflows.
func (c *Client) Workflows(ctx context.Context, page int) (*Page[workflow.Workflow], error) {
	var p Page[workflow.Workflow]
	if err := c.do(ctx, http.MethodGet, "/api/workflows/", pageQuery(page), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListWorkflows returns every workflow across all pages.
func (c *Client) ListWorkflows(ctx context.Context) ([]workflow.Workflow, error) {
	return collectPages(ctx, c.Workflows)
}

// ListWorkflowNames returns the set of remote workflow names. The reconciler
// diffs synthesized definitions against this set.
func (c *Client) ListWorkflowNames(ctx context.Context) (map[string]struct{}, error) {
	wfs, err := c.ListWorkflows(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(wfs))
	for _, wf := range wfs {
		names[wf.Name] = struct{}{}
	}
	return names, nil
}

// GetWorkflow returns a workflow by ID.
func (c *Client) GetWorkflow(ctx context.Context, workflowID int) (*workflow.Workflow, error) {
	var wf workflow.Workflow
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/workflows/%d/", workflowID), nil, nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// CreateWorkflow creates a new workflow and returns the server's copy,
// including the assigned ID.
func (c *Client) CreateWorkflow(ctx context.Context, wf *workflow.Workflow) (*workflow.Workflow, error) {
	var created workflow.Workflow
	if err := c.do(ctx, http.MethodPost, "/api/workflows/", nil, wf, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWorkflow replaces an existing workflow.
func (c *Client) UpdateWorkflow(ctx context.Context, workflowID int, wf *workflow.Workflow) (*workflow.Workflow, error) {
	var updated workflow.Workflow
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/workflows/%d/", workflowID), nil, wf, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWorkflow deletes a workflow by ID.
func (c *Client) DeleteWorkflow(ctx context.Context, workflowID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/workflows/%d/", workflowID), nil, nil, nil)
}
