package article

import (
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
)

type CreateInput struct {
	ID        string
	Title     string
	Permalink string
	Content   string
	Excerpt   string
	Draft     bool
}

type UpdateInput struct {
	ID        string
	Title     *string
	Permalink *string
	Content   *string
	Excerpt   *string
	Draft     *bool
}

type SyncTagsInput struct {
	ArticleID string
	TagIDs    []string
}

type Filter struct {
	AuthorID string
	Drafts   bool
	Search   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ArticleOutput struct {
	Article model.Article
}

type GetArticleOutput struct {
	Articles  []model.Article
	Paginator paginator.Paginator
}
