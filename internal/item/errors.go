package item

import "errors"

var (
	ErrCatalogUnavailable = errors.New("sample catalogue unavailable")
)
