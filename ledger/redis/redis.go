// Package redis provides a Redis-backed ledger store.
//
// Opt-in: with a durable ledger, a process restarted between Init and
// Cleanup can still tear down the workflows its predecessor created. The
// ledger is a single Redis list, appended with RPUSH so append order is
// preserved.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xraph/docuhook/ledger"
)

// DefaultKey is the Redis list key holding ledger entries.
const DefaultKey = "docuhook:ledger"

// compile-time interface check.
var _ ledger.Store = (*Store)(nil)

// Store implements ledger.Store on a Redis list.
type Store struct {
	rdb goredis.UniversalClient
	key string
}

// Option configures the store.
type Option func(*Store)

// WithKey overrides the Redis list key, letting several docuhook instances
// share one Redis without clobbering each other's ledgers.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New creates a Redis ledger store.
func New(rdb goredis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		rdb: rdb,
		key: DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append records a created workflow.
func (s *Store) Append(ctx context.Context, e ledger.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("ledger: marshal entry: %w", err)
	}

	if err := s.rdb.RPush(ctx, s.key, raw).Err(); err != nil {
		return fmt.Errorf("ledger: append: %w", err)
	}
	return nil
}

// Entries returns all recorded workflows in append order.
func (s *Store) Entries(ctx context.Context) ([]ledger.Entry, error) {
	raws, err := s.rdb.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("ledger: read: %w", err)
	}

	entries := make([]ledger.Entry, 0, len(raws))
	for _, raw := range raws {
		var e ledger.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("ledger: decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("ledger: clear: %w", err)
	}
	return nil
}
