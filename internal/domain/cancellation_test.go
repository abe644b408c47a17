package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationRequest_IsExpired(t *testing.T) {
	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	request := &CancellationRequest{ExpiresAt: expires}

	// The window is inclusive of its last instant
	assert.False(t, request.IsExpired(expires.Add(-time.Minute)))
	assert.False(t, request.IsExpired(expires))
	assert.True(t, request.IsExpired(expires.Add(time.Second)))
}

func TestCancellationRequest_CanBeVerified(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	open := &CancellationRequest{ExpiresAt: now.Add(time.Minute)}
	used := &CancellationRequest{ExpiresAt: now.Add(time.Minute), Verified: true}
	expired := &CancellationRequest{ExpiresAt: now.Add(-time.Minute)}

	assert.True(t, open.CanBeVerified(now))
	assert.False(t, used.CanBeVerified(now))
	assert.False(t, expired.CanBeVerified(now))
}
