package usecase

import (
	"github.com/nglume/nglume/internal/article"
	"github.com/nglume/nglume/internal/article/repository"
	"github.com/nglume/nglume/pkg/gate"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
	gate *gate.Gate
}

func New(l pkgLog.Logger, repo repository.Repository, g *gate.Gate) article.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		gate: g,
	}
}
