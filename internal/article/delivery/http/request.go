package http

import (
	"net/http"

	"github.com/nglume/nglume/internal/article"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/paginator"
)

type createArticleReq struct {
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Draft     bool   `json:"draft"`
}

func (r createArticleReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Title == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "title", "title is required"))
	}
	if r.Content == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "content", "content is required"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type updateArticleReq struct {
	Title     *string `json:"title"`
	Permalink *string `json:"permalink"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Draft     *bool   `json:"draft"`
}

func (r updateArticleReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Title != nil && *r.Title == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "title", "title cannot be empty"))
	}
	if r.Content != nil && *r.Content == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "content", "content cannot be empty"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type syncTagsReq struct {
	TagIDs []string `json:"tag_ids"`
}

type getArticlesReq struct {
	paginator.PaginateQuery
	AuthorID string `form:"author_id"`
	Drafts   bool   `form:"drafts"`
	Search   string `form:"q"`
}

func (r getArticlesReq) toInput() article.GetInput {
	return article.GetInput{
		Filter: article.Filter{
			AuthorID: r.AuthorID,
			Drafts:   r.Drafts,
			Search:   r.Search,
		},
		PaginateQuery: r.PaginateQuery,
	}
}
