package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/internal/user"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/response"
)

// Get lists users with pagination.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid query parameters"), nil)
		return
	}

	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListUserResp(out))
}

// Detail returns one user by id.
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

	response.OK(c, newUserResp(out.User))
}

// DetailMe returns the authenticated user.
func (h *Handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Create registers a user under the client-supplied id.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, sc, user.CreateInput{
		ID:        c.Param("id"),
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Roles:     req.Roles,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newUserResp(out.User))
}

// Update applies a partial update to a user.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, sc, user.UpdateInput{
		ID:        c.Param("id"),
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Roles:     req.Roles,
		Actor:     sc.ToActor(),
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Delete soft-deletes a user.
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
