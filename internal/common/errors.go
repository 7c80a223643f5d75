// Package common defines shared constants and sentinel errors used across
// the service and repository layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal         = errors.New("internal error")
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Credential errors. Lookup miss and password mismatch intentionally
	// share one value so callers cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrHashing            = errors.New("password hashing error")

	// Token lifecycle errors.
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Collaborator errors.
	ErrMailDelivery = errors.New("mail delivery failed")
	ErrMediaUpload  = errors.New("media upload failed")
)
