package main

import "time"

// User is the persisted auth user record.
// auth.go (handlers) convert this to a lightweight DTO for the client.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Name         string `gorm:"size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string `gorm:"size:72;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

const (
	statusDraft     = "draft"
	statusPublished = "published"
)

// Session is a wellness session record. UserID is set once at creation and
// never reassigned; every update is keyed by {id, user_id} together.
type Session struct {
	ID          string   `gorm:"primaryKey;type:uuid"`
	UserID      string   `gorm:"index;type:uuid;not null"`
	Title       string   `gorm:"type:text;not null"`
	Tags        []string `gorm:"serializer:json;type:text"`
	JSONFileURL string   `gorm:"type:text;not null"`
	Status      string   `gorm:"size:16;not null;default:draft"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Session) TableName() string { return "sessions" }

/* ===================== Public JSON (API) ====================== */

// Field names match the original API contract so existing clients keep working.

type userDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type sessionDTO struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	JSONFileURL string    `json:"json_file_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserDTO(u User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toSessionDTO(s Session) sessionDTO {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return sessionDTO{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		Tags:        tags,
		JSONFileURL: s.JSONFileURL,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSessionDTOs(list []Session) []sessionDTO {
	out := make([]sessionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSessionDTO(s))
	}
	return out
}
