package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Remember extends the session cookie lifetime.
	Remember bool `json:"remember"`
}

func (r loginReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()

	if r.Email == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "email", "email is required"))
	}
	if r.Password == "" {
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "password", "password is required"))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

type makeLoginTokenReq struct {
	UserID string `json:"user_id"`
}

func (r makeLoginTokenReq) validate() error {
	if r.UserID == "" {
		collector := pkgErrors.NewValidationErrorCollector()
		collector.Add(pkgErrors.NewValidationError(http.StatusBadRequest, "user_id", "user_id is required"))
		return collector
	}
	return nil
}

// processLoginRequest accepts either a JSON body or HTTP Basic credentials.
func (h *Handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq

	if email, password, ok := c.Request.BasicAuth(); ok {
		req.Email = email
		req.Password = password
		return req, req.validate()
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return loginReq{}, pkgErrors.NewBadRequestHTTPError("Invalid request body")
	}

	return req, req.validate()
}

// presentedToken pulls the raw token out of the Authorization header for
// refresh and logout, which operate on the token itself. Browser clients
// without a header fall back to the session cookie.
func (h *Handler) presentedToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		token, _, ok := auth.ExtractToken(header)
		if !ok {
			return "", auth.ErrTokenRequired
		}
		return token, nil
	}

	if h.cookie.Name != "" {
		if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
			return token, nil
		}
	}

	return "", auth.ErrTokenRequired
}
