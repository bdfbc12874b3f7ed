package http

import (
	"net/http"

	"github.com/nglume/nglume/internal/tag"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case tag.ErrTagNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tag not found", http.StatusNotFound)
	case tag.ErrTagExists:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Tag already exists", http.StatusConflict)
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
