package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_DuplicateEmail(t *testing.T) {
	t.Parallel()
	m := newMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, &User{Name: "A", Email: "a@x.com", PasswordHash: "h"}))

	err := m.CreateUser(ctx, &User{Name: "B", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// email uniqueness is case-insensitive
	err = m.CreateUser(ctx, &User{Name: "C", Email: "A@X.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryStore_UpdateOwned_WrongOwner(t *testing.T) {
	t.Parallel()
	m := newMemoryStore()
	ctx := context.Background()

	s := Session{UserID: "owner-1", Title: "Morning flow", JSONFileURL: "http://x/1.json", Status: statusDraft}
	require.NoError(t, m.CreateSession(ctx, &s))

	_, err := m.UpdateOwned(ctx, s.ID, "owner-2", SessionUpdate{
		Title: "Stolen", JSONFileURL: "http://x/2.json", Status: statusPublished,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// the target record is left untouched
	got, err := m.SessionOwned(ctx, s.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Morning flow", got.Title)
	assert.Equal(t, statusDraft, got.Status)
}

func TestMemoryStore_UpdateOwned_MissingID(t *testing.T) {
	t.Parallel()
	m := newMemoryStore()

	_, err := m.UpdateOwned(context.Background(), "no-such-id", "owner-1", SessionUpdate{
		Title: "x", JSONFileURL: "u", Status: statusDraft,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SessionsByStatus(t *testing.T) {
	t.Parallel()
	m := newMemoryStore()
	ctx := context.Background()

	for i, st := range []string{statusDraft, statusPublished, statusDraft, statusPublished} {
		owner := "owner-1"
		if i%2 == 0 {
			owner = "owner-2"
		}
		require.NoError(t, m.CreateSession(ctx, &Session{
			UserID: owner, Title: "t", JSONFileURL: "u", Status: st,
		}))
	}

	published, err := m.SessionsByStatus(ctx, statusPublished)
	require.NoError(t, err)
	assert.Len(t, published, 2)
	for _, s := range published {
		assert.Equal(t, statusPublished, s.Status)
	}

	mine, err := m.SessionsByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestMemoryStore_CopyOnRead(t *testing.T) {
	t.Parallel()
	m := newMemoryStore()
	ctx := context.Background()

	s := Session{UserID: "o", Title: "t", Tags: []string{"calm"}, JSONFileURL: "u", Status: statusDraft}
	require.NoError(t, m.CreateSession(ctx, &s))

	got, err := m.SessionOwned(ctx, s.ID, "o")
	require.NoError(t, err)
	got.Title = "mutated"
	got.Tags[0] = "mutated"

	again, err := m.SessionOwned(ctx, s.ID, "o")
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
	assert.Equal(t, []string{"calm"}, again.Tags)
}
