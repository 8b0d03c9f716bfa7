package router

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(rate.Limit(1), 2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	assert.True(t, rl.Allow("10.0.0.2"), "other clients have their own bucket")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(rate.Limit(1), 1)
	rl.now = func() time.Time { return now }
	rl.maxVisitors = 3

	for i := 0; i < 3; i++ {
		rl.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 3, rl.size())

	now = now.Add(visitorIdleTTL + time.Second)
	rl.Allow("10.0.1.1")

	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_EvictsOldestWhenFull(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(rate.Limit(1), 1)
	rl.now = func() time.Time { return now }
	rl.maxVisitors = 2

	rl.Allow("first")
	now = now.Add(time.Second)
	rl.Allow("second")
	now = now.Add(time.Second)
	rl.Allow("third")

	assert.Equal(t, 2, rl.size())
	assert.False(t, rl.Allow("third"), "newest visitor keeps its bucket")
}
