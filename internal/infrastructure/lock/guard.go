// Package lock provides the in-flight generation guard: at most one PDF
// generation runs per source document at a time.
package lock

import (
	"context"
	"sync"
	"time"
)

// Guard acquires a short-lived exclusive hold on a key. Acquire returns
// false when another generation for the same key is already running.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// MemoryGuard is a process-local Guard for single-instance deployments.
type MemoryGuard struct {
	mu    sync.Mutex
	holds map[string]time.Time // key -> expiry
}

// NewMemoryGuard creates a MemoryGuard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{holds: make(map[string]time.Time)}
}

// Acquire takes the hold if the key is free or its previous hold expired.
func (g *MemoryGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if expiry, held := g.holds[key]; held && expiry.After(now) {
		return false, nil
	}
	g.holds[key] = now.Add(ttl)
	return true, nil
}

// Release frees the hold on key.
func (g *MemoryGuard) Release(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.holds, key)
	return nil
}

var _ Guard = (*MemoryGuard)(nil)
