package http

import (
	"github.com/gin-gonic/gin"

	"tutorial-api/internal/catalog"
	"tutorial-api/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
