package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nglume/nglume/internal/article/repository"
	pkgLog "github.com/nglume/nglume/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sqlx.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sqlx.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
