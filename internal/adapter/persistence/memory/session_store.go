package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"quote_matrix/internal/domain/matrix"
	"quote_matrix/internal/usecase/interfaces"
)

var ErrSessionAlreadyExists = errors.New("session already exists")

// SessionStore keeps matrix sessions in process memory.
//
// Sessions are view state; they are gone after a restart, which is what the portal expects
// (the next page load opens a new session from the catalog).
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*matrix.Session
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*matrix.Session)}
}

func (s *SessionStore) Save(_ context.Context, sess *matrix.Session) error {
	if sess == nil || sess.ID == "" {
		return errors.New("session without id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return ErrSessionAlreadyExists
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*matrix.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

func (s *SessionStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false, nil
	}
	delete(s.sessions, id)
	return true, nil
}

// EvictIdle removes sessions last used before idleSince.
func (s *SessionStore) EvictIdle(_ context.Context, idleSince time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.LastUsed().Before(idleSince) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}
