package repository

import (
	"context"
	"errors"

	"github.com/nglume/nglume/internal/model"
)

// ErrNotFound is returned when no row matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Tag, error)
	GetOneByName(ctx context.Context, sc model.Scope, name string) (model.Tag, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Tag, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
