// Package common defines shared constants and sentinel errors used across
// the server and client layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. Every token verification failure collapses into
	// ErrInvalidToken.
	ErrTokenMissing       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrInvalidID is returned when an item ID is not in the store's ID format.
var ErrInvalidID = fmt.Errorf("%w: invalid id format", ErrorValidation)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72
// bytes).
var ErrPasswordTooLong = fmt.Errorf("%w: password too long", ErrorValidation)
