package catalog

import "errors"

var (
	ErrUnknownModel = errors.New("unknown model name")
)
