package http

import (
	"tutorial-api/internal/catalog"
	pkgErrors "tutorial-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	// Requests are already rejected by the modelname tag; this covers
	// callers reaching the use case with an unchecked name.
	case catalog.ErrUnknownModel:
		return pkgErrors.NewValidationError(pkgErrors.NewFieldError(
			pkgErrors.LocPath, "model_name", ModelNameRule.Type, ModelNameRule.Message))
	default:
		return err
	}
}
