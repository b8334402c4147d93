package memory

import (
	"context"
	"sync"
	"time"

	domainauth "holidaze/internal/domain/auth"
)

type SessionStore struct {
	mu    sync.RWMutex
	items map[domainauth.Token]domainauth.Session
	now   func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[domainauth.Token]domainauth.Session), now: time.Now}
}

func (s *SessionStore) Save(ctx context.Context, session *domainauth.Session) error {
	if session == nil || session.Token == "" {
		return domainauth.ErrTokenRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.Token] = *session
	return nil
}

// Get returns a copy so callers cannot mutate the stored session.
func (s *SessionStore) Get(ctx context.Context, token domainauth.Token) (*domainauth.Session, error) {
	s.mu.RLock()
	session, ok := s.items[token]
	s.mu.RUnlock()
	if !ok || session.Expired(s.now()) {
		return nil, domainauth.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token domainauth.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[token]; !ok {
		return domainauth.ErrSessionNotFound
	}
	delete(s.items, token)
	return nil
}

var _ domainauth.SessionStore = (*SessionStore)(nil)
