package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrFieldRequired = errors.New("field required")
	// ErrForbiddenRoleChange is returned when the actor may not apply the
	// requested role assignment.
	ErrForbiddenRoleChange = errors.New("forbidden role change")
)
