package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	"github.com/nglume/nglume/pkg/response"
)

// Auth returns a middleware that builds a request-scoped guard from the
// Authorization header, resolves the user, and attaches the scope to the
// request context. When no header is presented the session cookie is
// consulted instead. Decode and validation failures surface with their
// specific status instead of a generic 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, scheme, _ := auth.ExtractToken(c.GetHeader("Authorization"))
		if token == "" && m.cookieName != "" {
			if fromCookie, err := c.Cookie(m.cookieName); err == nil && fromCookie != "" {
				token, scheme = fromCookie, auth.SchemeBearer
			}
		}

		g := auth.NewGuard(m.guardDeps, token, scheme)
		c.Set(auth.GinGuardKey, g)

		if _, err := g.User(ctx); err != nil {
			m.secLog.TokenRejected(ctx, c.Request.URL.Path, err.Error())
			m.abortTokenError(c, err)
			return
		}

		sc, ok := g.Scope()
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(auth.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func (m Middleware) abortTokenError(c *gin.Context, err error) {
	if httpErr := auth.MapTokenError(err); httpErr != nil {
		response.HttpError(c, httpErr)
	} else {
		m.l.Errorf(c.Request.Context(), "internal.middleware.Auth: %v", err)
		response.Unauthorized(c)
	}
	c.Abort()
}
