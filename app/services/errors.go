package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so responses cannot leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, unknown and expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ValidationError marks client input that failed validation. Handlers
// translate it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
