package repository

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
)

// Filter contains filtering options for article queries.
type Filter struct {
	AuthorID string
	Drafts   bool // include drafts
	Search   string
}

// GetOptions contains options for paginated article listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating an article.
type CreateOptions struct {
	Article model.Article
}

// UpdateOptions contains options for updating an article.
type UpdateOptions struct {
	Article model.Article
}
