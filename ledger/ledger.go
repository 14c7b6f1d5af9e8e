// Package ledger tracks the remote workflows this process created, so
// Cleanup deletes exactly those and nothing else.
//
// The ledger is append-only during Init, read and cleared during Cleanup.
// The default memory store scopes it to the process lifetime; the redis
// driver is an opt-in for deployments that want cleanup to survive restarts.
package ledger

import (
	"context"

	"github.com/xraph/docuhook/internal/entity"
)

// Entry records one workflow created by this process.
type Entry struct {
	entity.Entity

	// WorkflowID is the server-assigned numeric workflow ID.
	WorkflowID int `json:"workflow_id"`

	// Name is the workflow name, kept for log readability.
	Name string `json:"name"`
}

// Store is the persistence contract for the registered-workflow ledger.
type Store interface {
	// Append records a created workflow.
	Append(ctx context.Context, e Entry) error

	// Entries returns all recorded workflows in append order.
	Entries(ctx context.Context) ([]Entry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
