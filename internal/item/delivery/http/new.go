package http

import (
	"github.com/gin-gonic/gin"

	"tutorial-api/internal/item"
	"tutorial-api/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	List(c *gin.Context)
	DetailOptional(c *gin.Context)
	DetailShort(c *gin.Context)
	DetailNeedy(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Search(c *gin.Context)
	QueryList(c *gin.Context)
	Headers(c *gin.Context)
	UpdateWithOwner(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
