package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the /models routes. ModelNameRule must be registered
// with validation.Setup before requests are served.
func RegisterRoutes(r gin.IRouter, h Handler) {
	models := r.Group("/models")
	{
		models.GET("/", h.List)
		models.GET("/:model_name", h.Get)
	}
}
