package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"blogapi/app/models"
)

// AdminUserRepository is the persistence contract for admin accounts.
type AdminUserRepository interface {
	GetByUsername(username string) (*models.AdminUser, error)
	Count() (int, error)
	Create(user *models.AdminUser) error
	RecordLogin(id int, at time.Time) error
}

// SQLAdminUserRepository stores admin users alongside the posts table.
type SQLAdminUserRepository struct {
	db     *sql.DB
	driver string
}

// NewSQLAdminUserRepository creates an admin user repository on top of db.
func NewSQLAdminUserRepository(db *sql.DB, driver string) *SQLAdminUserRepository {
	return &SQLAdminUserRepository{db: db, driver: driver}
}

// GetByUsername returns the account or ErrNotFound.
func (r *SQLAdminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	query := rebind(r.driver, `
		SELECT id, username, password_hash, last_login
		FROM admin_users WHERE username = ?`)

	var user models.AdminUser
	var lastLogin sql.NullTime
	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting admin user %q: %w", username, err)
	}
	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	return &user, nil
}

// Count returns the number of admin accounts.
func (r *SQLAdminUserRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting admin users: %w", err)
	}
	return count, nil
}

// Create inserts a new admin account.
func (r *SQLAdminUserRepository) Create(user *models.AdminUser) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid admin user: %w", err)
	}

	query := rebind(r.driver, `
		INSERT INTO admin_users (id, username, password_hash)
		VALUES (?, ?, ?)`)
	_, err := r.db.Exec(query, user.ID, user.Username, user.PasswordHash)
	if isUniqueViolation(err) {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("inserting admin user %q: %w", user.Username, err)
	}
	return nil
}

// RecordLogin stamps the account's last successful login.
func (r *SQLAdminUserRepository) RecordLogin(id int, at time.Time) error {
	query := rebind(r.driver, "UPDATE admin_users SET last_login = ? WHERE id = ?")
	if _, err := r.db.Exec(query, at, id); err != nil {
		return fmt.Errorf("recording login for user %d: %w", id, err)
	}
	return nil
}
