// Package validation turns gin binding failures into field level errors.
//
// It configures the validator engine behind gin's binding package so that
// error fields are reported by their wire names (json, form, uri, header)
// and converts validator.ValidationErrors and JSON decoding errors into a
// *errors.ValidationError, which pkg/response serves as 422.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	pkgErrors "tutorial-api/pkg/errors"
)

// Rule is a custom validator tag with the message reported when it fails.
type Rule struct {
	Tag     string
	Fn      validator.Func
	Type    string
	Message string
}

// TagAlphanumSpace accepts ASCII letters, digits and spaces.
const TagAlphanumSpace = "alphanumspace"

var alphanumSpace = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

var builtin = []Rule{
	{
		Tag: TagAlphanumSpace,
		Fn: func(fl validator.FieldLevel) bool {
			return alphanumSpace.MatchString(fl.Field().String())
		},
		Type:    pkgErrors.TypeValue,
		Message: "must contain only letters, digits and spaces",
	},
}

var (
	setupOnce sync.Once
	setupErr  error
	rules     = map[string]Rule{}
)

// Setup registers the wire-name tag function, the builtin rules and the given
// rules on gin's validator engine. Only the first call has any effect.
func Setup(custom ...Rule) error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(wireName)
		for _, r := range append(builtin, custom...) {
			if err := v.RegisterValidation(r.Tag, r.Fn); err != nil {
				setupErr = fmt.Errorf("register %q: %w", r.Tag, err)
				return
			}
			rules[r.Tag] = r
		}
	})
	return setupErr
}

func wireName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri", "header"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// FromBindError converts an error returned by one of gin's ShouldBind*
// methods into a *errors.ValidationError located at loc.
func FromBindError(loc string, err error) error {
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]pkgErrors.FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, fromFieldError(loc, fe))
		}
		return pkgErrors.NewValidationError(fields...)
	}

	if errors.Is(err, io.EOF) {
		return pkgErrors.NewValidationError(pkgErrors.NewFieldError(loc, "", pkgErrors.TypeMissing, "field required"))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		var path []string
		var field string
		if typeErr.Field != "" {
			path = strings.Split(typeErr.Field, ".")
			field = path[len(path)-1]
		}
		return pkgErrors.NewValidationError(pkgErrors.NewFieldError(loc, field, pkgErrors.TypeValue,
			"must be a valid "+jsonKind(typeErr.Type.Kind()), path...))
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return pkgErrors.NewValidationError(pkgErrors.NewFieldError(loc, "", pkgErrors.TypeJSON,
			"JSON decode error: unexpected end of input"))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return pkgErrors.NewValidationError(pkgErrors.NewFieldError(loc, "", pkgErrors.TypeJSON,
			fmt.Sprintf("JSON decode error at offset %d", syntaxErr.Offset)))
	}

	return pkgErrors.NewValidationError(pkgErrors.NewFieldError(loc, "", pkgErrors.TypeValue, err.Error()))
}

// fromFieldError builds the user facing message for a failed validator tag.
func fromFieldError(loc string, fe validator.FieldError) pkgErrors.FieldError {
	// Namespace is "<Struct>.<field>.<sub>"; drop the struct name.
	path := strings.Split(fe.Namespace(), ".")
	if len(path) > 1 {
		path = path[1:]
	}
	field := fe.Field()
	str := fe.Kind() == reflect.String

	var typ, msg string
	switch fe.Tag() {
	case "required":
		typ, msg = pkgErrors.TypeMissing, "field required"
	case "min":
		typ = pkgErrors.TypeValue
		if str {
			msg = fmt.Sprintf("must be at least %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		typ = pkgErrors.TypeValue
		if str {
			msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("must not exceed %s", fe.Param())
		}
	case "gt":
		typ, msg = pkgErrors.TypeValue, fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		typ, msg = pkgErrors.TypeValue, fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		typ, msg = pkgErrors.TypeEnum, fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		typ, msg = pkgErrors.TypeValue, "must be a valid email address"
	case "alphanum":
		typ, msg = pkgErrors.TypeValue, "must contain only letters and digits"
	default:
		if r, ok := rules[fe.Tag()]; ok {
			typ, msg = r.Type, r.Message
			break
		}
		typ = pkgErrors.TypeValue
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		} else {
			msg = fmt.Sprintf("failed %s", fe.Tag())
		}
	}

	return pkgErrors.NewFieldError(loc, field, typ, msg, path...)
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
