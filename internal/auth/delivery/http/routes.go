package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the auth routes. Login is public; refresh and
// logout operate on the presented token directly, so they skip the auth
// middleware too. MakeLoginToken is wired behind admin permission by the
// server.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, adminOnly ...gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)

		tokenHandlers := append(append([]gin.HandlerFunc{}, adminOnly...), h.MakeLoginToken)
		authGroup.POST("/token", tokenHandlers...)
	}
}
