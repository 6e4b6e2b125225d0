package services

import (
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business rules for blog posts.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput is the client payload for creating a post. The id is
// caller-supplied and the date is the publish date.
type CreatePostInput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	ViewCount *int   `json:"view_count"`
}

// UpdatePostInput is the client payload for updating a post. The id comes
// from the URL and is immutable; view_count is only overwritten when
// explicitly supplied.
type UpdatePostInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ViewCount *int   `json:"view_count"`
}

// postDateFormats are the accepted publish-date layouts: RFC 3339
// (trailing Z included), a zone-less timestamp read as UTC, and a bare
// date.
var postDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePostDate(value string) (time.Time, error) {
	for _, layout := range postDateFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationErrorf("invalid date format: %q", value)
}

// List returns all posts, newest publish date first.
func (s *PostService) List() ([]*models.Post, error) {
	return s.repo.List()
}

// Get returns the post and counts the read. The read and the increment
// are separate statements; two simultaneous reads may under-count by one,
// which is acceptable for a view counter.
func (s *PostService) Get(id string) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	post.ViewCount++

	return post, nil
}

// Create validates the input and stores a new post. A duplicate id
// surfaces as repositories.ErrDuplicateID.
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	if input.ID == "" {
		return nil, validationErrorf("missing required field: id")
	}
	if input.Title == "" {
		return nil, validationErrorf("missing required field: title")
	}
	if input.Content == "" {
		return nil, validationErrorf("missing required field: content")
	}
	if input.Date == "" {
		return nil, validationErrorf("missing required field: date")
	}

	date, err := parsePostDate(input.Date)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:      input.ID,
		Title:   input.Title,
		Content: input.Content,
		Date:    date,
	}
	if input.ViewCount != nil {
		post.ViewCount = *input.ViewCount
	}
	post.BeforeSave()

	if err := post.Validate(); err != nil {
		return nil, validationErrorf("invalid post: %v", err)
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update rewrites title and content (and view_count when supplied),
// bumps updated_at, and leaves id and publish date untouched.
func (s *PostService) Update(id string, input UpdatePostInput) error {
	if input.Title == "" {
		return validationErrorf("missing required field: title")
	}
	if input.Content == "" {
		return validationErrorf("missing required field: content")
	}
	if input.ViewCount != nil && *input.ViewCount < 0 {
		return validationErrorf("view_count cannot be negative")
	}

	post := &models.Post{
		ID:      id,
		Title:   input.Title,
		Content: input.Content,
	}
	post.BeforeSave()

	if input.ViewCount != nil {
		post.ViewCount = *input.ViewCount
		return s.repo.UpdateWithViewCount(post)
	}
	return s.repo.Update(post)
}

// Delete removes the post by id.
func (s *PostService) Delete(id string) error {
	return s.repo.Delete(id)
}
