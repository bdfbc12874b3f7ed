package middleware

import (
	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/pkg/gate"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type Middleware struct {
	l          pkgLog.Logger
	guardDeps  auth.GuardDeps
	gate       *gate.Gate
	secLog     *auth.SecurityLogger
	cookieName string
}

func New(l pkgLog.Logger, guardDeps auth.GuardDeps, g *gate.Gate, cookieName string) Middleware {
	return Middleware{
		l:          l,
		guardDeps:  guardDeps,
		gate:       g,
		secLog:     auth.NewSecurityLogger(l),
		cookieName: cookieName,
	}
}
