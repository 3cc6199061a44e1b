package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows the status code it should be served with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// Locations of a request input, used as the first element of FieldError.Loc.
const (
	LocPath   = "path"
	LocQuery  = "query"
	LocHeader = "header"
	LocBody   = "body"
)

// Error types reported in FieldError.Type.
const (
	TypeMissing = "missing"
	TypeInt     = "int_parsing"
	TypeBool    = "bool_parsing"
	TypeEnum    = "enum"
	TypeJSON    = "json_invalid"
	TypeValue   = "value_error"
)

// FieldError describes why one request input was rejected.
type FieldError struct {
	Loc   []string `json:"loc"`
	Field string   `json:"field"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
}

// ValidationError is returned when request inputs fail to bind or validate.
// It is served as 422 Unprocessable Entity.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		f := e.Fields[0]
		return fmt.Sprintf("validation failed: %s %s", f.Field, f.Msg)
	}
	return fmt.Sprintf("validation failed: %d fields", len(e.Fields))
}

// NewValidationError wraps field errors into a ValidationError.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError builds a FieldError for the named input at loc.
// Nested body fields pass their path segments in path.
func NewFieldError(loc, field, typ, msg string, path ...string) FieldError {
	l := append([]string{loc}, path...)
	if len(path) == 0 && field != "" {
		l = append(l, field)
	}
	return FieldError{
		Loc:   l,
		Field: field,
		Msg:   msg,
		Type:  typ,
	}
}

// Missing is shorthand for a required input that was not sent.
func Missing(loc, field string) FieldError {
	return NewFieldError(loc, field, TypeMissing, "field required")
}
