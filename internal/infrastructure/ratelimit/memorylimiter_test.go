package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoginRateLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter := NewMemoryLoginRateLimiter(3, time.Minute)
	ctx := t.Context()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "budi@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)
		require.NoError(t, limiter.RecordFailure(ctx, "budi@example.com"))
	}

	allowed, err := limiter.Allow(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys are unaffected.
	allowed, err = limiter.Allow(ctx, "siti@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLoginRateLimiter_ResetClearsFailures(t *testing.T) {
	limiter := NewMemoryLoginRateLimiter(1, time.Minute)
	ctx := t.Context()

	require.NoError(t, limiter.RecordFailure(ctx, "budi@example.com"))

	allowed, err := limiter.Allow(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "budi@example.com"))

	allowed, err = limiter.Allow(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLoginRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewMemoryLoginRateLimiter(1, 10*time.Millisecond)
	ctx := t.Context()

	require.NoError(t, limiter.RecordFailure(ctx, "budi@example.com"))

	allowed, err := limiter.Allow(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
