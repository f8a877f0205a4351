package service

import (
	"errors"
	"strings"
)

// Sentinel errors for the expected failure modes. The response package
// maps each onto an HTTP status in one place.
var (
	ErrInvalidID          = errors.New("invalid id")
	ErrGameNotFound       = errors.New("game not found")
	ErrDuplicateTitle     = errors.New("a game with this title already exists for this user")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries the full list of field violations for one
// payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
