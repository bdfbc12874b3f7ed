package usecase

import (
	"github.com/nglume/nglume/internal/tag"
	"github.com/nglume/nglume/internal/tag/repository"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) tag.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
