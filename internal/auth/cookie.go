package auth

import "net/http"

// CookieSettings describes the HttpOnly cookie that mirrors the session
// token for browser clients. The Authorization header always wins; the
// cookie is only consulted when no header is presented.
type CookieSettings struct {
	Name           string
	Domain         string
	SameSite       string
	Secure         bool
	MaxAge         int
	MaxAgeRemember int
}

// SameSiteMode maps the configured samesite string to its http constant.
// Unrecognized values fall back to Lax.
func (s CookieSettings) SameSiteMode() http.SameSite {
	switch s.SameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Lifetime picks the cookie max age based on the remember flag.
func (s CookieSettings) Lifetime(remember bool) int {
	if remember && s.MaxAgeRemember > 0 {
		return s.MaxAgeRemember
	}
	return s.MaxAge
}
