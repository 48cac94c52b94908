// Package common defines shared sentinel errors used across the token
// issuance layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Configuration/precondition errors. A missing storage handle is a
	// bootstrap bug, not a retryable runtime condition.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	ErrSigningKeyMissing       = errors.New("signing key missing")

	// Principal resolution errors.
	ErrUnknownPrincipalKind = errors.New("unknown principal kind")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
