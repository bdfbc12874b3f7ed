package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/internal/auth"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/response"
)

// Login authenticates with credentials (JSON body or HTTP Basic) and
// returns a fresh token with its decoded body.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Host:     c.Request.Host,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setTokenCookie(c, out.Token, h.cookie.Lifetime(req.Remember))

	response.OK(c, gin.H{
		"token":              out.Token,
		"decoded_token_body": out.DecodedTokenBody,
	})
}

// Refresh exchanges a token within the grace window for a fresh one. The
// old token is revoked.
func (h *Handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := h.presentedToken(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Refresh(ctx, auth.RefreshInput{
		Token: token,
		Host:  c.Request.Host,
	})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setTokenCookie(c, out.Token, h.cookie.Lifetime(false))

	response.OK(c, gin.H{
		"token":              out.Token,
		"decoded_token_body": out.DecodedTokenBody,
	})
}

// Logout blacklists the presented token. Idempotent.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := h.presentedToken(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Logout(ctx, token); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.clearTokenCookie(c)

	response.NoContent(c)
}

func (h *Handler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(h.cookie.SameSiteMode())
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) clearTokenCookie(c *gin.Context) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(h.cookie.SameSiteMode())
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// MakeLoginToken mints a single-use login token for the requested user.
// The token resolves a user exactly once via the Token scheme.
func (h *Handler) MakeLoginToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req makeLoginTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewBadRequestHTTPError("Invalid request body"), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, ok := auth.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.MakeLoginToken(ctx, auth.MakeLoginTokenInput{
		UserID: req.UserID,
		Host:   c.Request.Host,
		Actor:  sc.ToActor(),
	})
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "User not found", http.StatusNotFound), nil)
			return
		}
		if errors.Is(err, auth.ErrForbiddenTarget) {
			response.Forbidden(c)
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, gin.H{
		"token":              out.Token,
		"decoded_token_body": out.DecodedTokenBody,
	})
}
