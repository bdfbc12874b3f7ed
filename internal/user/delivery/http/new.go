package http

import (
	"github.com/nglume/nglume/internal/user"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

func New(l pkgLog.Logger, uc user.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
