package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgErrors "tutorial-api/pkg/errors"
)

func TestNewFieldError(t *testing.T) {
	fe := pkgErrors.Missing(pkgErrors.LocQuery, "needy")
	assert.Equal(t, []string{"query", "needy"}, fe.Loc)
	assert.Equal(t, "needy", fe.Field)
	assert.Equal(t, pkgErrors.TypeMissing, fe.Type)

	nested := pkgErrors.NewFieldError(pkgErrors.LocBody, "price", pkgErrors.TypeValue, "must be greater than 0", "item", "price")
	assert.Equal(t, []string{"body", "item", "price"}, nested.Loc)
}

func TestValidationErrorMessage(t *testing.T) {
	one := pkgErrors.NewValidationError(pkgErrors.Missing(pkgErrors.LocQuery, "needy"))
	assert.Equal(t, "validation failed: needy field required", one.Error())

	two := pkgErrors.NewValidationError(
		pkgErrors.Missing(pkgErrors.LocBody, "name"),
		pkgErrors.Missing(pkgErrors.LocBody, "price"),
	)
	assert.Equal(t, "validation failed: 2 fields", two.Error())
}

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(409, "conflict")
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, "conflict", err.Error())
}
