package http

import (
	"github.com/nglume/nglume/internal/tag"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc tag.UseCase
}

func New(l pkgLog.Logger, uc tag.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
