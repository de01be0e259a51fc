package utils

import (
	"context"
	"shrm-web/internal/pkg/constvars"
	"sync"
)

// VisitorSession is the session id of the current request. Rotate swaps the id
// for a fresh one and lets the owner of the cookie reissue it.
type VisitorSession struct {
	mu       sync.RWMutex
	id       string
	onRotate func(id string)
}

func NewVisitorSession(id string, onRotate func(id string)) *VisitorSession {
	return &VisitorSession{id: id, onRotate: onRotate}
}

func (s *VisitorSession) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *VisitorSession) Rotate() string {
	s.mu.Lock()
	s.id = GenerateSessionID()
	id := s.id
	s.mu.Unlock()

	if s.onRotate != nil {
		s.onRotate(id)
	}
	return id
}

func WithVisitorSession(ctx context.Context, session *VisitorSession) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session)
}

// RotateSessionID reports false when the context carries a fixed id that
// cannot be rotated.
func RotateSessionID(ctx context.Context) (string, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(*VisitorSession)
	if !ok {
		return "", false
	}
	return session.Rotate(), true
}
