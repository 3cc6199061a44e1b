package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Each numbered prefix demonstrates one way of receiving parameters.
func RegisterRoutes(r gin.IRouter, h Handler) {
	items := r.Group("/items")
	{
		items.GET("/", h.List)
		items.POST("/", h.Create)
		items.GET("/:item_id", h.Get)
		items.PUT("/:item_id", h.Update)
	}

	r.GET("/items2/:item_id", h.DetailOptional)
	r.GET("/items3/:item_id", h.DetailShort)
	r.GET("/items4/:item_id", h.DetailNeedy)
	r.GET("/items5/", h.Search)
	r.GET("/items6/", h.QueryList)
	r.GET("/items7/", h.Headers)
	r.PUT("/items8/:item_id", h.UpdateWithOwner)
}
