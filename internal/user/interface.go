package user

import (
	"context"

	"github.com/nglume/nglume/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetUserOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (UserOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (UserOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (UserOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
