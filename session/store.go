package session

import (
	"sync"
	"time"
)

// Store remembers revoked token ids until the tokens would have expired anyway.
type Store struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewStore() *Store {
	return &Store{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// Revoke marks a token id as unusable until expiresAt.
func (s *Store) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[tokenID] = expiresAt
}

func (s *Store) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, exists := s.revoked[tokenID]
	if !exists {
		return false
	}
	return s.now().Before(expiresAt)
}

// Len returns the number of tracked revocations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.revoked)
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expiresAt := range s.revoked {
		if !now.Before(expiresAt) {
			delete(s.revoked, id)
		}
	}
}

// StartCleanupRoutine drops expired revocations every interval until Stop.
func (s *Store) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CleanupExpired()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}
