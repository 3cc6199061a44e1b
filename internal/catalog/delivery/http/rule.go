package http

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"tutorial-api/internal/model"
	pkgErrors "tutorial-api/pkg/errors"
	"tutorial-api/pkg/validation"
)

// ModelNameRule validates the `modelname` binding tag.
var ModelNameRule = validation.Rule{
	Tag:     "modelname",
	Fn:      isModelName,
	Type:    pkgErrors.TypeEnum,
	Message: "must be one of: " + allowedModelNames(),
}

func isModelName(fl validator.FieldLevel) bool {
	return model.ModelName(fl.Field().String()).IsValid()
}

func allowedModelNames() string {
	names := model.ModelNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
