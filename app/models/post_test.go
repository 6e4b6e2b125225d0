package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:      "first-post",
				Title:   "First Post",
				Content: "Some content",
				Date:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing id",
			post: &Post{
				Title:   "First Post",
				Content: "Some content",
				Date:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing title",
			post: &Post{
				ID:      "first-post",
				Content: "Some content",
				Date:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing content",
			post: &Post{
				ID:    "first-post",
				Title: "First Post",
				Date:  time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero date",
			post: &Post{
				ID:      "first-post",
				Title:   "First Post",
				Content: "Some content",
			},
			wantErr: true,
		},
		{
			name: "id too long",
			post: &Post{
				ID:      strings.Repeat("x", 51),
				Title:   "First Post",
				Content: "Some content",
				Date:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "negative view count",
			post: &Post{
				ID:        "first-post",
				Title:     "First Post",
				Content:   "Some content",
				Date:      time.Now(),
				ViewCount: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeSave(t *testing.T) {
	post := &Post{
		ID:      "first-post",
		Title:   "First Post",
		Content: "Some content",
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, post.UpdatedAt.IsZero())
	post.BeforeSave()
	assert.False(t, post.UpdatedAt.IsZero())
	// The publish date is caller-owned and must survive a save.
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), post.Date)

	post.ViewCount = -5
	post.BeforeSave()
	assert.Equal(t, 0, post.ViewCount)
}

func TestAdminUserProfile(t *testing.T) {
	user := &AdminUser{ID: 1, Username: "admin", PasswordHash: "secret"}

	profile := user.Profile()
	assert.Equal(t, 1, profile.ID)
	assert.Equal(t, "admin", profile.Username)
}
