package http

import (
	"github.com/nglume/nglume/internal/article"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc article.UseCase
}

func New(l pkgLog.Logger, uc article.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
