package http

import (
	"github.com/nglume/nglume/internal/auth"
)

func (h *Handler) mapError(err error) error {
	if httpErr := auth.MapTokenError(err); httpErr != nil {
		return httpErr
	}
	// Unknown errors panic to be caught by the recovery middleware.
	panic(err)
}
