// Package common defines sentinel errors and shared constants used across
// client and server layers of wordvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorEmptyUsername = errors.New("username must not be empty")
	ErrorEmptyPassword = errors.New("password must not be empty")

	// Auth errors. All of these collapse into a single unauthenticated
	// outcome at the transport boundary so a caller cannot tell which
	// check failed.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrUnknownSubject = errors.New("unknown subject")
)
