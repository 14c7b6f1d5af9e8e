// Package memory provides the default in-memory ledger store.
package memory

import (
	"context"
	"sync"

	"github.com/xraph/docuhook/ledger"
)

// compile-time interface check.
var _ ledger.Store = (*Store)(nil)

// Store is an in-memory ledger.Store. Entries live for the process lifetime
// only, matching the default teardown semantics.
type Store struct {
	mu      sync.Mutex
	entries []ledger.Entry
}

// New creates a new in-memory ledger store.
func New() *Store {
	return &Store{}
}

// Append records a created workflow.
func (s *Store) Append(_ context.Context, e ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// Entries returns all recorded workflows in append order.
func (s *Store) Entries(_ context.Context) ([]ledger.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Clear removes every entry.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
