package http

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BoundsTrackedClients(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	rl.maxClients = 4

	for i := range 4 {
		assert.True(t, rl.allow(fmt.Sprintf("10.0.0.%d", i), ""))
	}
	assert.False(t, rl.allow("10.0.0.9", ""), "no room for a new client")
	assert.True(t, rl.allow("10.0.0.0", ""), "known clients keep their bucket")
	assert.Equal(t, 4, rl.Len())
}

func TestRateLimiter_PrunesRefilledClients(t *testing.T) {
	rl := NewRateLimiter(1e6, 1)
	rl.maxClients = 2

	assert.True(t, rl.allow("10.0.0.1", ""))
	assert.True(t, rl.allow("10.0.0.2", ""))
	time.Sleep(time.Millisecond)

	assert.True(t, rl.allow("10.0.0.3", ""))
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_SessionsShareTheAddressBucket(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	for i := range sessionsPerAddress {
		assert.True(t, rl.allow("10.0.0.1", fmt.Sprintf("session-%d", i)))
	}
	assert.False(t, rl.allow("10.0.0.1", "one-more-session"))
	assert.True(t, rl.allow("10.0.0.2", "one-more-session"), "other addresses are not affected")
	assert.False(t, rl.allow("10.0.0.2", "session-0"), "the session bucket is spent")
}
