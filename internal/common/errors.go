// Package common defines shared sentinel errors and small helpers used
// across CineTrack components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input validation (missing or malformed fields).
	ErrValidation = errors.New("validation error")

	// Identity-specific errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
