package article

import (
	"context"

	"github.com/nglume/nglume/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetArticleOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ArticleOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (ArticleOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (ArticleOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	GetTags(ctx context.Context, sc model.Scope, id string) ([]model.Tag, error)
	// SyncTags replaces the article's tag set.
	SyncTags(ctx context.Context, sc model.Scope, ip SyncTagsInput) ([]model.Tag, error)
}
