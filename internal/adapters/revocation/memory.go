// Package revocation holds RevocationRegistry implementations that live outside the database.
package revocation

import (
	"context"
	"sync"
	"time"

	"storesapi/internal/domain"
)

type memoryRegistry struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewMemoryRegistry returns a process-local RevocationRegistry. Entries are kept for the
// life of the process and are lost on restart.
func NewMemoryRegistry() domain.RevocationRegistry {
	return &memoryRegistry{revoked: make(map[string]struct{})}
}

func (r *memoryRegistry) Revoke(_ context.Context, jti string, _ time.Time) error {
	r.mu.Lock()
	r.revoked[jti] = struct{}{}
	r.mu.Unlock()
	return nil
}

func (r *memoryRegistry) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.RLock()
	_, ok := r.revoked[jti]
	r.mu.RUnlock()
	return ok, nil
}
