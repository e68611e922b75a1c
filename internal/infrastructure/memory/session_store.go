// Package memory provides in-process stores backing the session model.
package memory

import (
	"context"
	"sync"

	"github.com/jdguggs10/flaim-app/internal/domain/session"
)

type SessionStore struct {
	mu    sync.RWMutex
	creds map[string]session.Credentials
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		creds: make(map[string]session.Credentials),
	}
}

func (s *SessionStore) Save(_ context.Context, sessionID string, creds session.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds[sessionID] = creds
	return nil
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (session.Credentials, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.creds[sessionID]
	return creds, ok, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.creds, sessionID)
	return nil
}
