package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_RevokeAndExpire(t *testing.T) {
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	s.Revoke("jti-1", now.Add(time.Hour))
	s.Revoke("jti-2", now.Add(-time.Minute))
	s.Revoke("", now.Add(time.Hour))

	assert.True(t, s.IsRevoked("jti-1"))
	assert.False(t, s.IsRevoked("jti-2"), "already expired tokens need no revocation")
	assert.False(t, s.IsRevoked("unknown"))
	assert.Equal(t, 2, s.Len())

	s.CleanupExpired()
	assert.Equal(t, 1, s.Len())

	now = now.Add(2 * time.Hour)
	assert.False(t, s.IsRevoked("jti-1"))
	s.CleanupExpired()
	assert.Equal(t, 0, s.Len())
}

func TestStore_StopIsIdempotent(t *testing.T) {
	s := NewStore()
	s.StartCleanupRoutine(time.Millisecond)
	s.Stop()
	assert.NotPanics(t, s.Stop)
}
