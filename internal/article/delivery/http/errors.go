package http

import (
	"net/http"

	"github.com/nglume/nglume/internal/article"
	pkgErrors "github.com/nglume/nglume/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case article.ErrArticleNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Article not found", http.StatusNotFound)
	case article.ErrPermalinkInUse:
		return pkgErrors.NewHTTPError(http.StatusConflict, "Permalink already in use", http.StatusConflict)
	case article.ErrUnknownTag:
		return pkgErrors.NewUnprocessableHTTPError("Unknown tag")
	case article.ErrForbidden:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		// Unknown errors panic to be caught by the recovery middleware.
		panic(err)
	}
}
