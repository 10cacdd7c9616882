package state

import (
	"context"
	"sync"
	"time"
)

// Session is an authenticated catalog session.
type Session struct {
	ID       string
	Login    string
	OpenedAt time.Time
}

type SessionStore interface {
	GetSession(ctx context.Context) (Session, bool)
	SetSession(ctx context.Context, session Session) error
	ClearSession(ctx context.Context) error
}

type memorySessionStore struct {
	mutex   sync.RWMutex
	session Session
	active  bool
}

// NewMemorySessionStore keeps the session for the lifetime of the process.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) GetSession(_ context.Context) (Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.session, s.active
}

func (s *memorySessionStore) SetSession(_ context.Context, session Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session = session
	s.active = session.ID != ""
	return nil
}

func (s *memorySessionStore) ClearSession(_ context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session = Session{}
	s.active = false
	return nil
}
