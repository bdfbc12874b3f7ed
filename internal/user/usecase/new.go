package usecase

import (
	"github.com/nglume/nglume/internal/user"
	"github.com/nglume/nglume/internal/user/repository"
	"github.com/nglume/nglume/pkg/gate"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
	gate *gate.Gate
}

func New(l pkgLog.Logger, repo repository.Repository, g *gate.Gate) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		gate: g,
	}
}
