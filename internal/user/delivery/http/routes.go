package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/middleware"
	"github.com/nglume/nglume/internal/model"
)

// RegisterRoutes registers the user routes. Ownership-gated operations
// pass the path id into the rule context so "acting on own profile"
// resolves against the requester.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users", mw.Auth())
	{
		users.GET("", mw.Can(model.PermUserList, nil), h.Get)
		users.GET("/me", h.DetailMe)
		users.GET("/:id", mw.Can(model.PermUserGetOne, middleware.WithOwner("id")), h.Detail)
		users.PUT("/:id", mw.Can(model.PermUserCreate, nil), h.Create)
		users.PATCH("/:id", mw.Can(model.PermUserUpdate, middleware.WithOwner("id")), h.Update)
		users.DELETE("/:id", mw.Can(model.PermUserDelete, nil), h.Delete)
	}
}
