package http

import (
	"net/http"

	"tutorial-api/internal/item"
	pkgErrors "tutorial-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and are served as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrCatalogUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return err
	}
}
