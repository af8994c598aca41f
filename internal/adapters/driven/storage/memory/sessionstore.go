// Package memory provides in-memory store implementations for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save stores the session, replacing any existing one.
func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// Get returns the stored session, or domain.ErrNoSession.
func (s *SessionStore) Get(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, domain.ErrNoSession
	}
	copied := *s.session
	return &copied, nil
}

// Delete removes the stored session.
func (s *SessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
