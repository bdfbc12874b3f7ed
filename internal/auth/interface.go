package auth

import (
	"context"

	"github.com/nglume/nglume/internal/model"
)

// UserProvider looks up and verifies stored identities. Implemented by the
// user repository.
type UserProvider interface {
	RetrieveByID(ctx context.Context, id string) (*model.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*model.User, error)
	// ValidateCredentials compares the password against the stored hash.
	ValidateCredentials(ctx context.Context, u *model.User, password string) bool
}

// Guard is the per-request authentication context. One instance per
// request; never shared across concurrent requests.
type Guard interface {
	// User resolves the current identity from the presented token,
	// memoized for the guard's lifetime. Decode and validation failures
	// propagate rather than being swallowed into "no user".
	User(ctx context.Context) (*model.User, error)
	// Attempt authenticates with credentials. A false outcome is not an
	// error path and leaves the guard anonymous.
	Attempt(ctx context.Context, email, password string) bool
	// Login forces an authenticated state for the given user.
	Login(u *model.User, remember bool)
	// Logout returns the guard to anonymous. Idempotent.
	Logout()
	// Check reports whether an identity has been resolved.
	Check() bool
	// ViaToken reports authentication provenance.
	ViaToken() bool
	// Scope returns the request scope for the resolved identity.
	Scope() (model.Scope, bool)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, ip LoginInput) (TokenOutput, error)
	Refresh(ctx context.Context, ip RefreshInput) (TokenOutput, error)
	Logout(ctx context.Context, token string) error
	// MakeLoginToken mints a single-use login token for the user; the
	// token is consumed on first successful resolution.
	MakeLoginToken(ctx context.Context, ip MakeLoginTokenInput) (TokenOutput, error)
}
