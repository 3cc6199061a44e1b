package http

import (
	"github.com/gin-gonic/gin"

	"tutorial-api/pkg/response"
)

// Create godoc
// @Summary     Create a user
// @Description Accepts a password but responds with a model that never includes it.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User with password"
// @Success     200 {object} userResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /users/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, err)
		return
	}

	response.JSON(c, newUserResp(output))
}
