package auth

import (
	"errors"
	"net/http"

	pkgErrors "github.com/nglume/nglume/pkg/errors"
	"github.com/nglume/nglume/pkg/jwt"
	"github.com/nglume/nglume/pkg/payload"
)

// MapTokenError translates the token error taxonomy into boundary HTTP
// errors: 400 missing token, 401 expired/not-yet-valid/bad credentials,
// 422 malformed/signature/claims, 500 signing or algorithm config.
// Returns nil for errors outside the taxonomy; those are internal.
func MapTokenError(err error) *pkgErrors.HTTPError {
	var claimErr *payload.InvalidClaimError

	switch {
	case errors.Is(err, ErrTokenRequired):
		return pkgErrors.NewBadRequestHTTPError("Token required")
	case errors.Is(err, ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, ErrTooManyAttempts):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts", http.StatusTooManyRequests)
	case errors.Is(err, ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid token", http.StatusUnauthorized)
	case errors.Is(err, payload.ErrTokenExpired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Token has expired", http.StatusUnauthorized)
	case errors.Is(err, payload.ErrTokenNotYetValid):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Token not yet valid", http.StatusUnauthorized)
	case errors.Is(err, jwt.ErrMalformedToken):
		return pkgErrors.NewUnprocessableHTTPError("Malformed token")
	case errors.Is(err, jwt.ErrSignatureInvalid):
		return pkgErrors.NewUnprocessableHTTPError("Invalid token signature")
	case errors.As(err, &claimErr):
		return pkgErrors.NewUnprocessableHTTPError(claimErr.Error())
	case errors.Is(err, payload.ErrDuplicateClaim),
		errors.Is(err, payload.ErrClaimNotFound),
		errors.Is(err, payload.ErrClaimTypeMismatch):
		return pkgErrors.NewUnprocessableHTTPError("Invalid token claims")
	case errors.Is(err, jwt.ErrUnsupportedAlgorithm):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Token configuration error", http.StatusInternalServerError)
	default:
		return nil
	}
}
