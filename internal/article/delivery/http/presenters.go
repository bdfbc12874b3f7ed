package http

import (
	"github.com/nglume/nglume/internal/article"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/pkg/paginator"
	"github.com/nglume/nglume/pkg/response"
)

type articleResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Permalink *string           `json:"permalink,omitempty"`
	Content   string            `json:"content"`
	Excerpt   *string           `json:"excerpt,omitempty"`
	AuthorID  string            `json:"author_id"`
	Draft     bool              `json:"draft"`
	Tags      []tagResp         `json:"tags,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newArticleResp(a model.Article) articleResp {
	resp := articleResp{
		ID:        a.ID,
		Title:     a.Title,
		Permalink: a.Permalink,
		Content:   a.Content,
		Excerpt:   a.Excerpt,
		AuthorID:  a.AuthorID,
		Draft:     a.Draft,
		CreatedAt: response.DateTime(a.CreatedAt),
		UpdatedAt: response.DateTime(a.UpdatedAt),
	}
	for _, t := range a.Tags {
		resp.Tags = append(resp.Tags, newTagResp(t))
	}
	return resp
}

type tagResp struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}

func newTagResp(t model.Tag) tagResp {
	return tagResp{
		ID:  t.ID,
		Tag: t.Tag,
	}
}

func newTagsResp(tags []model.Tag) []tagResp {
	resp := make([]tagResp, len(tags))
	for i, t := range tags {
		resp[i] = newTagResp(t)
	}
	return resp
}

type listArticleResp struct {
	Articles  []articleResp               `json:"articles"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListArticleResp(out article.GetArticleOutput) listArticleResp {
	arts := make([]articleResp, len(out.Articles))
	for i, a := range out.Articles {
		arts[i] = newArticleResp(a)
	}
	return listArticleResp{
		Articles:  arts,
		Paginator: out.Paginator.ToResponse(),
	}
}
