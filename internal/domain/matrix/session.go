package matrix

import (
	"sync"
	"time"

	"quote_matrix/internal/domain/entities"
)

// Session binds one engine to one interactive view of a quote.
//
// Every engine call goes through Do, so one session has a single writer at a time even
// when HTTP requests for it overlap.
type Session struct {
	ID       string
	QuoteID  string
	OpenedAt time.Time

	mu       sync.Mutex
	lastUsed time.Time
	engine   *Engine
}

func NewSession(id, quoteID string, engine *Engine, now time.Time) *Session {
	return &Session{
		ID:       id,
		QuoteID:  quoteID,
		OpenedAt: now,
		lastUsed: now,
		engine:   engine,
	}
}

// Do runs fn with exclusive access to the engine and marks the session as used at now.
func (s *Session) Do(now time.Time, fn func(e *Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = now
	return fn(s.engine)
}

// View renders the session under its lock.
func (s *Session) View(now time.Time) View {
	var v View
	_ = s.Do(now, func(e *Engine) error {
		v = e.View()
		return nil
	})
	v.SessionID = s.ID
	v.QuoteID = s.QuoteID
	v.OpenedAt = s.OpenedAt
	return v
}

// Snapshot returns the session's catalog with its current assignments.
func (s *Session) Snapshot(now time.Time) entities.Catalog {
	var c entities.Catalog
	_ = s.Do(now, func(e *Engine) error {
		c = e.Snapshot()
		return nil
	})
	c.QuoteID = s.QuoteID
	return c
}

func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
