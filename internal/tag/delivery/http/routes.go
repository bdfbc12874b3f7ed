package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/middleware"
	"github.com/nglume/nglume/internal/model"
)

// RegisterRoutes registers the tag routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	tags := r.Group("/tags", mw.Auth())
	{
		tags.GET("", mw.Can(model.PermTagList, nil), h.Get)
		tags.PUT("/:id", mw.Can(model.PermTagCreate, nil), h.Create)
		tags.DELETE("/:id", mw.Can(model.PermTagDelete, nil), h.Delete)
	}
}
