package repository

import (
	"context"
	"errors"

	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
)

// ErrNotFound is returned when no row matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Article, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Article, error)
	GetOneByPermalink(ctx context.Context, sc model.Scope, permalink string) (model.Article, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Article, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Article, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	GetTags(ctx context.Context, sc model.Scope, articleID string) ([]model.Tag, error)
	// SyncTags replaces the article's tag links atomically.
	SyncTags(ctx context.Context, sc model.Scope, articleID string, tagIDs []string) error
}
