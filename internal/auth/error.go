package auth

import "errors"

var (
	// ErrTokenRequired is returned when a protected route is hit without a
	// token. Surfaced as 400 at the boundary.
	ErrTokenRequired = errors.New("token required")
	// ErrInvalidCredentials is returned for both unknown user and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a token's subject no longer resolves
	// to a stored user.
	ErrUserNotFound = errors.New("user not found")
	// ErrTooManyAttempts is returned when login attempts are rate limited.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrForbiddenTarget is returned when minting a login token for a user
	// the caller may not impersonate.
	ErrForbiddenTarget = errors.New("forbidden target user")
)
