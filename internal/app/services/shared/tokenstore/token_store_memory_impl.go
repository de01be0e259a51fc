package tokenstore

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"
	"sync"
	"time"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

const memorySweepInterval = time.Minute

type memoryTokenStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryTokenStore is used when Redis is disabled. Tokens do not survive a restart.
func NewMemoryTokenStore(ttl time.Duration) contracts.TokenProvider {
	return &memoryTokenStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryTokenStore) GetToken(ctx context.Context) (string, error) {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return "", nil
	}

	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", nil
	}

	now := s.now()
	if (!entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)) || utils.IsTokenExpired(entry.token, now) {
		return "", s.ClearToken(ctx)
	}
	return entry.token, nil
}

func (s *memoryTokenStore) SetToken(ctx context.Context, token string) error {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return exceptions.ErrMissingSessionID(nil)
	}

	now := s.now()
	entry := memoryEntry{token: token}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.sweepLocked(now)
	s.entries[sessionID] = entry
	s.mu.Unlock()
	return nil
}

// sweepLocked drops entries of visitors that never came back. It runs at most
// once per memorySweepInterval and expects s.mu to be held.
func (s *memoryTokenStore) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < memorySweepInterval {
		return
	}
	s.lastSweep = now
	for sessionID, entry := range s.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(s.entries, sessionID)
		}
	}
}

func (s *memoryTokenStore) ClearToken(ctx context.Context) error {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return nil
	}

	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}
