package http

import (
	"github.com/nglume/nglume/internal/auth"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type Handler struct {
	l      pkgLog.Logger
	uc     auth.UseCase
	cookie auth.CookieSettings
}

func New(l pkgLog.Logger, uc auth.UseCase, cookie auth.CookieSettings) *Handler {
	return &Handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
