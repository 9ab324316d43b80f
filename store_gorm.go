package main

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type gormUserStore struct {
	db *gorm.DB
}

func (s gormUserStore) CreateUser(ctx context.Context, u *User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = newID()
	}
	return s.db.WithContext(ctx).Create(u).Error
}

func (s gormUserStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s gormUserStore) UserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

type gormSessionStore struct {
	db *gorm.DB
}

func (s gormSessionStore) CreateSession(ctx context.Context, rec *Session) error {
	if rec.ID == "" {
		rec.ID = newID()
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// UpdateOwned applies upd to the single row matching id AND userID. The
// owner predicate rides in the UPDATE itself, so the write is atomic and a
// wrong owner looks exactly like a missing id.
func (s gormSessionStore) UpdateOwned(ctx context.Context, id, userID string, upd SessionUpdate) (*Session, error) {
	res := s.db.WithContext(ctx).Model(&Session{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("title", "tags", "json_file_url", "status").
		Updates(&Session{Title: upd.Title, Tags: upd.Tags, JSONFileURL: upd.JSONFileURL, Status: upd.Status})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.SessionOwned(ctx, id, userID)
}

func (s gormSessionStore) SessionOwned(ctx context.Context, id, userID string) (*Session, error) {
	var rec Session
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s gormSessionStore) SessionsByOwner(ctx context.Context, userID string) ([]Session, error) {
	var recs []Session
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s gormSessionStore) SessionsByStatus(ctx context.Context, status string) ([]Session, error) {
	var recs []Session
	if err := s.db.WithContext(ctx).Where("status = ?", status).
		Order("created_at ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
