// Package common defines shared constants and sentinel errors used across
// AssetLedger components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registry error taxonomy. Every public registry operation fails with
	// exactly one of these kinds; the transport layer maps them to status
	// codes without altering the kind.
	ErrorAssetNotFound     = errors.New("asset not found")
	ErrorPermissionDenied  = errors.New("permission denied")
	ErrorContentRestricted = errors.New("content restricted")
	ErrorInvalidParameters = errors.New("invalid parameters")
	ErrorCapacityExceeded  = errors.New("capacity exceeded")
	ErrorFormatValidation  = errors.New("format validation failed")

	// Reserved kinds. Declared for taxonomy completeness: no operation on
	// the current surface returns them (the monotonic counter makes
	// duplicate ids unreachable, and no administrator-gated operations
	// exist).
	ErrorInsufficientPrivileges = errors.New("insufficient privileges")
	ErrorDuplicateEntry         = errors.New("duplicate entry")
	ErrorAccessDenied           = errors.New("access denied")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
