package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/internal/model"
	"github.com/nglume/nglume/internal/tag"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/response"
)

type createTagReq struct {
	Tag string `json:"tag"`
}

func (r createTagReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Tag == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "tag", "tag is required"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type tagResp struct {
	ID        string            `json:"id"`
	Tag       string            `json:"tag"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newTagResp(t model.Tag) tagResp {
	return tagResp{
		ID:        t.ID,
		Tag:       t.Tag,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

// Get lists all tags, optionally filtered by a search term.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	tags, err := h.uc.Get(ctx, sc, tag.GetInput{Search: c.Query("q")})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	resp := make([]tagResp, len(tags))
	for i, t := range tags {
		resp[i] = newTagResp(t)
	}
	response.OK(c, resp)
}

// Create registers a tag under the client-supplied id.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, tag.CreateInput{
		ID:  c.Param("id"),
		Tag: req.Tag,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newTagResp(created))
}

// Delete removes a tag and its article links.
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
