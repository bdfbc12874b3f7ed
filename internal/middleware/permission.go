package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/pkg/response"
)

// PermissionContext builds the dynamic-rule context for a permission check
// from the request.
type PermissionContext func(c *gin.Context) map[string]any

// WithOwner maps the named path parameter to the ownership context key, so
// rules like "acting on own entity" can compare it to the actor's id.
func WithOwner(param string) PermissionContext {
	return func(c *gin.Context) map[string]any {
		return map[string]any{"userId": c.Param(param)}
	}
}

// Can returns a middleware enforcing the permission. Must run after Auth.
// A denial is an ordinary 403, never an error path.
func (m Middleware) Can(permission string, pc PermissionContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sc, ok := auth.GetScopeFromContext(ctx)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		var ruleCtx map[string]any
		if pc != nil {
			ruleCtx = pc(c)
		}

		if !m.gate.Can(sc.ToActor(), permission, ruleCtx) {
			m.secLog.PermissionDenied(ctx, sc.UserID, permission, c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
