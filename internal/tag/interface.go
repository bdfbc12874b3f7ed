package tag

import (
	"context"

	"github.com/nglume/nglume/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) ([]model.Tag, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Tag, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
