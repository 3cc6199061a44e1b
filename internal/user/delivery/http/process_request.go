package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tutorial-api/pkg/errors"
	"tutorial-api/pkg/validation"
)

// processCreateReq binds and validates the sign-up body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, validation.FromBindError(pkgErrors.LocBody, err)
	}
	return req, nil
}
