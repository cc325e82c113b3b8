package revocation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_Revoke(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = reg.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "other identifiers are unaffected")
}

func TestMemoryRegistry_Revoke_idempotent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry().(*memoryRegistry)

	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Time{}))
	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Time{}))

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Len(t, reg.revoked, 1)
}

func TestMemoryRegistry_expired_entries_stay_revoked(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Revoke(ctx, "old", time.Now().Add(-time.Hour)))

	revoked, err := reg.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryRegistry_concurrent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		jti := fmt.Sprintf("jti-%d", i)
		go func() {
			defer wg.Done()
			_ = reg.Revoke(ctx, jti, time.Time{})
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.IsRevoked(ctx, jti)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		revoked, err := reg.IsRevoked(ctx, fmt.Sprintf("jti-%d", i))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}
