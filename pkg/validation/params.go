package validation

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "tutorial-api/pkg/errors"
)

// Params reads typed scalar inputs from a request and collects every
// failure, so one 422 reports all bad inputs at once.
type Params struct {
	c      *gin.Context
	fields []pkgErrors.FieldError
}

// NewParams returns a Params reading from c.
func NewParams(c *gin.Context) *Params {
	return &Params{c: c}
}

// PathInt parses the path parameter name as an integer.
func (p *Params) PathInt(name string) int {
	raw := p.c.Param(name)
	if raw == "" {
		p.add(pkgErrors.Missing(pkgErrors.LocPath, name))
		return 0
	}
	return p.parseInt(pkgErrors.LocPath, name, raw)
}

// PathString returns the path parameter name, which must be non-empty.
func (p *Params) PathString(name string) string {
	raw := p.c.Param(name)
	if raw == "" {
		p.add(pkgErrors.Missing(pkgErrors.LocPath, name))
	}
	return raw
}

// QueryInt parses the query parameter name as an integer, or returns def
// when it is absent.
func (p *Params) QueryInt(name string, def int) int {
	raw, ok := p.c.GetQuery(name)
	if !ok {
		return def
	}
	return p.parseInt(pkgErrors.LocQuery, name, raw)
}

// QueryBool parses the query parameter name as a boolean, or returns def
// when it is absent. Accepts 1/0, true/false, on/off, yes/no in any case.
func (p *Params) QueryBool(name string, def bool) bool {
	raw, ok := p.c.GetQuery(name)
	if !ok {
		return def
	}
	v, ok := ParseBool(raw)
	if !ok {
		p.add(pkgErrors.NewFieldError(pkgErrors.LocQuery, name, pkgErrors.TypeBool,
			"value could not be parsed to a boolean"))
	}
	return v
}

// QueryString returns the query parameter name, or nil when it is absent.
func (p *Params) QueryString(name string) *string {
	raw, ok := p.c.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}

// RequiredQuery returns the query parameter name, recording an error when
// it is absent.
func (p *Params) RequiredQuery(name string) string {
	raw, ok := p.c.GetQuery(name)
	if !ok {
		p.add(pkgErrors.Missing(pkgErrors.LocQuery, name))
	}
	return raw
}

// Check records fe when ok is false. It lets callers add rules that the
// typed readers do not cover.
func (p *Params) Check(ok bool, fe pkgErrors.FieldError) {
	if !ok {
		p.add(fe)
	}
}

// Err returns a *errors.ValidationError holding every recorded failure, or nil.
func (p *Params) Err() error {
	if len(p.fields) == 0 {
		return nil
	}
	return pkgErrors.NewValidationError(p.fields...)
}

func (p *Params) add(fe pkgErrors.FieldError) {
	p.fields = append(p.fields, fe)
}

func (p *Params) parseInt(loc, name, raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.add(pkgErrors.NewFieldError(loc, name, pkgErrors.TypeInt,
			"value is not a valid integer"))
		return 0
	}
	return v
}

// ParseBool reports the boolean value of s and whether s was recognised.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}
