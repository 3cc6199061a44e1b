package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the /users routes.
func RegisterRoutes(r gin.IRouter, h Handler) {
	users := r.Group("/users")
	{
		users.POST("/", h.Create)
	}
}
