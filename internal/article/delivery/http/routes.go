package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/middleware"
	"github.com/nglume/nglume/internal/model"
)

// RegisterRoutes registers the article routes. Ownership checks run in
// the usecase after the article is loaded, since the author id is not
// part of the URL.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	articles := r.Group("/articles", mw.Auth())
	{
		articles.GET("", mw.Can(model.PermArticleList, nil), h.Get)
		articles.GET("/:id", mw.Can(model.PermArticleGetOne, nil), h.Detail)
		articles.PUT("/:id", mw.Can(model.PermArticleCreate, nil), h.Create)
		articles.PATCH("/:id", h.Update)
		articles.DELETE("/:id", h.Delete)

		articles.GET("/:id/tags", mw.Can(model.PermArticleGetOne, nil), h.GetTags)
		articles.PUT("/:id/tags", h.SyncTags)
	}
}
