package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/article"
	"github.com/nglume/nglume/internal/auth"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/response"
)

// Get lists articles with pagination. Drafts are only included for the
// requester's own articles unless the requester is an admin.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getArticlesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid query parameters"), nil)
		return
	}

	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListArticleResp(out))
}

// Detail returns one article by id, with its tags.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newArticleResp(out.Article))
}

// Create registers an article under the client-supplied id.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, sc, article.CreateInput{
		ID:        c.Param("id"),
		Title:     req.Title,
		Permalink: req.Permalink,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Draft:     req.Draft,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newArticleResp(out.Article))
}

// Update applies a partial update to an article.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, sc, article.UpdateInput{
		ID:        c.Param("id"),
		Title:     req.Title,
		Permalink: req.Permalink,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Draft:     req.Draft,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newArticleResp(out.Article))
}

// Delete soft-deletes an article.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.NoContent(c)
}

// GetTags lists the tags attached to an article.
func (h *Handler) GetTags(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	tags, err := h.uc.GetTags(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTagsResp(tags))
}

// SyncTags replaces the article's tag set.
func (h *Handler) SyncTags(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req syncTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}

	tags, err := h.uc.SyncTags(ctx, sc, article.SyncTagsInput{
		ArticleID: c.Param("id"),
		TagIDs:    req.TagIDs,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTagsResp(tags))
}
