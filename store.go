package main

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when a record cannot be located. Owner-scoped
	// lookups return it both for missing ids and for ids owned by someone
	// else, so callers cannot probe which ids exist.
	ErrNotFound = errors.New("record not found")
)

// UserStore persists auth users.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id string) (*User, error)
}

// SessionUpdate carries the mutable fields of a session record.
type SessionUpdate struct {
	Title       string
	Tags        []string
	JSONFileURL string
	Status      string
}

// SessionStore persists wellness session records. UpdateOwned and
// SessionOwned match on {id, userID} together as a single predicate.
type SessionStore interface {
	CreateSession(ctx context.Context, s *Session) error
	UpdateOwned(ctx context.Context, id, userID string, upd SessionUpdate) (*Session, error)
	SessionOwned(ctx context.Context, id, userID string) (*Session, error)
	SessionsByOwner(ctx context.Context, userID string) ([]Session, error)
	SessionsByStatus(ctx context.Context, status string) ([]Session, error)
}
