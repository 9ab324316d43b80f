package main

import (
	"context"
	"strings"
	"sync"
	"time"
)

// memoryStore is a thread-safe in-memory implementation of UserStore and
// SessionStore, used when no DATABASE_URL is configured and by tests.
type memoryStore struct {
	mu sync.RWMutex

	usersByID    map[string]*User
	usersByEmail map[string]*User

	sessions map[string]*Session
	order    []string // session ids in insertion order
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		usersByID:    make(map[string]*User),
		usersByEmail: make(map[string]*User),
		sessions:     make(map[string]*Session),
	}
}

/* ===================== Users ====================== */

func (m *memoryStore) CreateUser(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := m.usersByEmail[key]; exists {
		return ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = newID()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	// store copies; callers get copies back via getters
	cp := *u
	m.usersByID[u.ID] = &cp
	m.usersByEmail[key] = &cp
	return nil
}

func (m *memoryStore) UserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryStore) UserByID(_ context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

/* ===================== Sessions ====================== */

func (m *memoryStore) CreateSession(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = newID()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	cp := copySession(s)
	m.sessions[s.ID] = cp
	m.order = append(m.order, s.ID)
	return nil
}

func (m *memoryStore) UpdateOwned(_ context.Context, id, userID string, upd SessionUpdate) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	s.Title = upd.Title
	s.Tags = append([]string(nil), upd.Tags...)
	s.JSONFileURL = upd.JSONFileURL
	s.Status = upd.Status
	s.UpdatedAt = time.Now()
	return copySession(s), nil
}

func (m *memoryStore) SessionOwned(_ context.Context, id, userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	return copySession(s), nil
}

func (m *memoryStore) SessionsByOwner(_ context.Context, userID string) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Session, 0)
	for _, id := range m.order {
		if s := m.sessions[id]; s.UserID == userID {
			out = append(out, *copySession(s))
		}
	}
	return out, nil
}

func (m *memoryStore) SessionsByStatus(_ context.Context, status string) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Session, 0)
	for _, id := range m.order {
		if s := m.sessions[id]; s.Status == status {
			out = append(out, *copySession(s))
		}
	}
	return out, nil
}

// copySession deep-copies the tag slice so callers cannot mutate stored state.
func copySession(s *Session) *Session {
	cp := *s
	if s.Tags != nil {
		cp.Tags = append([]string(nil), s.Tags...)
	}
	return &cp
}
