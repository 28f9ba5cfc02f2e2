// Package common defines shared constants and sentinel errors used across
// PassVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Account-specific errors.
	ErrorEmailAlreadyExists = errors.New("email already exists")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Vault-specific errors.
	ErrorInvalidCategory  = errors.New("invalid category")
	ErrorDecryptionFailed = errors.New("decryption failed")

	// Token lifecycle errors.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)
