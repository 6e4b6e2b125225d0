package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// AuthService issues and validates the opaque bearer tokens that gate
// mutating endpoints.
type AuthService struct {
	users    repositories.AdminUserRepository
	sessions *repositories.SessionStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.AdminUserRepository, sessions *repositories.SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// HashPassword produces a bcrypt hash suitable for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// checkPassword compares a candidate password against a stored hash.
// Bcrypt hashes are recognized by prefix; anything else is treated as a
// legacy SHA-256 hex digest and compared in constant time.
func checkPassword(hash, password string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(hash))) == 1
}

// generateToken returns a cryptographically random opaque token. The
// token is the sole bearer credential, so 32 bytes of entropy.
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Bootstrap creates the admin account on first startup. It is a no-op
// when any account already exists.
func (s *AuthService) Bootstrap(username, passwordHash string) error {
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := &models.AdminUser{ID: 1, Username: username, PasswordHash: passwordHash}
	if err := s.users.Create(user); err != nil {
		return fmt.Errorf("creating bootstrap admin: %w", err)
	}
	return nil
}

// Login validates the credentials and opens a session. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.Session, *models.AdminUser, error) {
	user, err := s.users.GetByUsername(username)
	if errors.Is(err, repositories.ErrNotFound) {
		// Burn a comparison anyway so the miss costs as much as a mismatch.
		checkPassword("", password)
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, nil, err
	}

	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Put(session); err != nil {
		return nil, nil, err
	}

	user.LastLogin = session.CreatedAt
	if err := s.users.RecordLogin(user.ID, session.CreatedAt); err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

// Verify returns the session behind a token, or ErrInvalidToken when the
// token is unknown or its TTL has elapsed. Expired entries are evicted
// by the store itself, so a verify never resurrects a stale session.
func (s *AuthService) Verify(token string) (*models.Session, error) {
	session, err := s.sessions.Get(token)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Logout removes the session. Unknown tokens are not an error.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Delete(token)
}
