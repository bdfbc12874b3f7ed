package auth

import (
	"context"

	"github.com/nglume/nglume/internal/model"
)

type contextKey string

const scopeKey contextKey = "auth.scope"

// GinGuardKey is where middleware stores the request guard in the gin
// context.
const GinGuardKey = "auth.guard"

// SetScopeToContext attaches the resolved scope to the request context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope set by the auth middleware.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	return sc, ok
}
