// Package common defines shared constants and sentinel errors used across
// the identity service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Account errors. ErrorInvalidCredentials deliberately covers both an
	// unknown email and a wrong password so callers cannot tell which failed.
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorEmailTaken         = errors.New("email already registered")

	// Upload errors.
	ErrorInvalidFileType    = errors.New("invalid file type")
	ErrorInvalidContentType = errors.New("malformed content type")

	// Auth errors (invalid or malformed token / claims).
	ErrorInvalidToken  = errors.New("invalid token")
	ErrorInvalidClaims = errors.New("invalid claims")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
