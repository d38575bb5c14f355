// Package common defines shared constants and sentinel errors used across
// the scheduling backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal    = errors.New("internal error")
	ErrorUnavailable = errors.New("storage unavailable")

	// Authentication and authorization errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors (missing/malformed input fields).
	ErrorValidation = errors.New("validation error")

	// Token lifecycle errors. The HTTP boundary reports both as a plain
	// 401 so callers cannot tell an expired token from a forged one.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
