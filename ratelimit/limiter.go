// Package ratelimit implements keyed token bucket rate limiting.
//
// The paperless client paces its outbound API calls with a host-keyed
// limiter so that a busy reconciliation or a chatty callback cannot trip
// server-side throttling.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket rate limiter. The rate and burst are fixed per
// limiter; each key gets its own bucket.
type Limiter struct {
	rate  float64 // tokens per second; <= 0 disables limiting
	burst float64

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithBurst sets how many requests a key may spend at once before pacing
// kicks in. Defaults to one second's worth of tokens.
func WithBurst(n int) Option {
	return func(l *Limiter) { l.burst = float64(n) }
}

// New creates a limiter allowing perSecond requests per key. A non-positive
// rate disables limiting entirely.
func New(perSecond int, opts ...Option) *Limiter {
	l := &Limiter{
		rate:    float64(perSecond),
		burst:   float64(perSecond),
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether the key may proceed right now, consuming one token
// when it may.
func (l *Limiter) Allow(key string) bool {
	if l.rate <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.getOrCreateBucket(key)
	l.refill(b)

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available for the key or the context is
// cancelled.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	if l.rate <= 0 {
		return nil
	}

	for {
		if l.Allow(key) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(float64(time.Second) / l.rate)):
			// Try again after one token's worth of refill.
		}
	}
}

// Reset drops the key's bucket; the next request starts from a full burst.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

func (l *Limiter) getOrCreateBucket(key string) *bucket {
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			tokens:   l.burst, // start full
			lastFill: time.Now(),
		}
		l.buckets[key] = b
	}
	return b
}

func (l *Limiter) refill(b *bucket) {
	now := time.Now()
	b.tokens += now.Sub(b.lastFill).Seconds() * l.rate
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.lastFill = now
}
