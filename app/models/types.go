package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post is the primary content record. IDs are caller-supplied slugs that
// double as the public URL fragment, so they must be unique.
type Post struct {
	ID        string    `json:"id" validate:"required,max=50"`
	Title     string    `json:"title" validate:"required,max=255"`
	Content   string    `json:"content" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	UpdatedAt time.Time `json:"updated_at"`
	ViewCount int       `json:"view_count" validate:"gte=0"`
}

// Session grants authenticated access for a fixed TTL, referenced by an
// opaque bearer token. Sessions live only in process memory and are lost
// on restart.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is the single identity allowed to mutate posts.
type AdminUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username" validate:"required,max=100"`
	PasswordHash string    `json:"-" validate:"required"`
	LastLogin    time.Time `json:"last_login"`
}
