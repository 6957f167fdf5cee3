package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, window time.Duration) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		Limit:           limit,
		Window:          window,
		CleanupInterval: 0, // no background sweep in tests
	})
}

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := newTestLimiter(10, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 10-(i+1), info.Remaining)
	}
}

func TestLimiter_DeniesOverLimit(t *testing.T) {
	limiter := newTestLimiter(10, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client-a")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("client-a")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, info.RetryAfter, time.Minute)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := newTestLimiter(1, time.Minute)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiter_WindowResets(t *testing.T) {
	limiter := newTestLimiter(1, 30*time.Millisecond)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, info := limiter.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, 0, info.Remaining)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-a")
		require.True(t, allowed)
	}
}

func TestLimiter_EvictExpiredDropsStaleWindows(t *testing.T) {
	limiter := newTestLimiter(5, 10*time.Millisecond)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i))
	}
	limiter.mu.Lock()
	assert.Len(t, limiter.windows, 20)
	limiter.mu.Unlock()

	time.Sleep(20 * time.Millisecond)
	limiter.evictExpired()

	limiter.mu.Lock()
	assert.Empty(t, limiter.windows)
	limiter.mu.Unlock()
}

func TestLimiter_EvictionKeepsLiveWindows(t *testing.T) {
	limiter := newTestLimiter(5, time.Minute)
	defer limiter.Stop()

	limiter.Allow("client-a")
	limiter.evictExpired()

	limiter.mu.Lock()
	assert.Len(t, limiter.windows, 1)
	limiter.mu.Unlock()
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, DefaultConfig().Limit, info.Limit)
}

func TestLimiter_StopIsSafeWithoutSweep(t *testing.T) {
	limiter := newTestLimiter(1, time.Minute)
	limiter.Stop()
}
