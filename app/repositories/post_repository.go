package repositories

import (
	"database/sql"
	"fmt"

	"blogapi/app/models"
)

// PostRepository is the persistence contract for blog posts.
type PostRepository interface {
	List() ([]*models.Post, error)
	GetByID(id string) (*models.Post, error)
	IncrementViewCount(id string) error
	Create(post *models.Post) error
	Update(post *models.Post) error
	UpdateWithViewCount(post *models.Post) error
	Upsert(post *models.Post) error
	Delete(id string) error
}

// SQLPostRepository stores posts in a relational table. Every statement
// is parameterized.
type SQLPostRepository struct {
	db     *sql.DB
	driver string
}

// NewSQLPostRepository creates a post repository on top of db.
func NewSQLPostRepository(db *sql.DB, driver string) *SQLPostRepository {
	return &SQLPostRepository{db: db, driver: driver}
}

const postColumns = "id, title, content, date, updated_at, view_count"

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Date, &post.UpdatedAt, &post.ViewCount)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts ordered by publish date, newest first.
func (r *SQLPostRepository) List() ([]*models.Post, error) {
	query := rebind(r.driver, "SELECT "+postColumns+" FROM posts ORDER BY date DESC")
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return posts, nil
}

// GetByID returns a single post or ErrNotFound.
func (r *SQLPostRepository) GetByID(id string) (*models.Post, error) {
	query := rebind(r.driver, "SELECT "+postColumns+" FROM posts WHERE id = ?")
	post, err := scanPost(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting post %q: %w", id, err)
	}
	return post, nil
}

// IncrementViewCount bumps the view counter by one.
func (r *SQLPostRepository) IncrementViewCount(id string) error {
	query := rebind(r.driver, "UPDATE posts SET view_count = view_count + 1 WHERE id = ?")
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("incrementing view count for %q: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a new post. A duplicate id yields ErrDuplicateID.
func (r *SQLPostRepository) Create(post *models.Post) error {
	query := rebind(r.driver, `
		INSERT INTO posts (id, title, content, date, updated_at, view_count)
		VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, post.ID, post.Title, post.Content, post.Date, post.UpdatedAt, post.ViewCount)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("inserting post %q: %w", post.ID, err)
	}
	return nil
}

// Update rewrites title, content and updated_at, preserving the stored
// view count. Returns ErrNotFound when no row matched.
func (r *SQLPostRepository) Update(post *models.Post) error {
	query := rebind(r.driver, `
		UPDATE posts SET title = ?, content = ?, updated_at = ?
		WHERE id = ?`)
	result, err := r.db.Exec(query, post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("updating post %q: %w", post.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateWithViewCount is Update plus an explicit view_count overwrite.
func (r *SQLPostRepository) UpdateWithViewCount(post *models.Post) error {
	query := rebind(r.driver, `
		UPDATE posts SET title = ?, content = ?, updated_at = ?, view_count = ?
		WHERE id = ?`)
	result, err := r.db.Exec(query, post.Title, post.Content, post.UpdatedAt, post.ViewCount, post.ID)
	if err != nil {
		return fmt.Errorf("updating post %q: %w", post.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert inserts the post or, when the id already exists, overwrites it.
// Used by bulk import.
func (r *SQLPostRepository) Upsert(post *models.Post) error {
	query := rebind(r.driver, `
		INSERT INTO posts (id, title, content, date, updated_at, view_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			date = excluded.date,
			updated_at = excluded.updated_at,
			view_count = excluded.view_count`)
	_, err := r.db.Exec(query, post.ID, post.Title, post.Content, post.Date, post.UpdatedAt, post.ViewCount)
	if err != nil {
		return fmt.Errorf("upserting post %q: %w", post.ID, err)
	}
	return nil
}

// Delete removes the post. Returns ErrNotFound when no row matched.
func (r *SQLPostRepository) Delete(id string) error {
	query := rebind(r.driver, "DELETE FROM posts WHERE id = ?")
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("deleting post %q: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
