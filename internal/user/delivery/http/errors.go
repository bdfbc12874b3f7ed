package http

import (
	"net/http"

	"github.com/nglume/nglume/internal/user"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found", http.StatusNotFound)
	case user.ErrUserExists:
		return pkgErrors.NewHTTPError(http.StatusConflict, "User already exists", http.StatusConflict)
	case user.ErrFieldRequired:
		return pkgErrors.NewBadRequestHTTPError("Missing required field")
	case user.ErrForbiddenRoleChange:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
