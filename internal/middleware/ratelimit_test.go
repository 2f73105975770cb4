package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d within burst", i)
	}

	assert.False(t, limiter.Allow("10.0.0.1"), "burst exhausted")
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// A different client still has its full budget.
	assert.True(t, limiter.Allow("10.0.0.2"))
}
