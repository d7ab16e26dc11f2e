package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_Reserve(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	k := NewKeyedLimiter(0.5, 1)
	k.now = func() time.Time { return now }

	ok, _ := k.Reserve("u-1")
	assert.True(t, ok)

	ok, wait := k.Reserve("u-1")
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, wait)

	ok, _ = k.Reserve("u-2")
	assert.True(t, ok, "buckets are per key")

	now = now.Add(2 * time.Second)
	ok, _ = k.Reserve("u-1")
	assert.True(t, ok, "refused reservation must not consume the token")
}

func TestKeyedLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	k := NewKeyedLimiter(1, 1)
	k.now = func() time.Time { return now }

	k.Reserve("a")
	k.Reserve("b")
	assert.Equal(t, 2, k.size())

	now = now.Add(limiterIdleTTL + time.Minute)
	k.Reserve("c")
	assert.Equal(t, 1, k.size())
}
