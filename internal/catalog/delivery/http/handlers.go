package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tutorial-api/pkg/errors"
	"tutorial-api/pkg/response"
	"tutorial-api/pkg/validation"
)

// Get godoc
// @Summary     Read a model by name
// @Description model_name must be one of the declared model names, otherwise 422.
// @Tags        Models
// @Produce     json
// @Param       model_name path string true "Model name" Enums(telecentro, movistar, claro, fibertel)
// @Success     200 {object} getResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /models/{model_name} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, validation.FromBindError(pkgErrors.LocPath, err))
		return
	}

	output, err := h.uc.Get(ctx, req.ModelName)
	if err != nil {
		h.l.Warnf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newGetResp(output))
}

// List godoc
// @Summary     List model names
// @Tags        Models
// @Produce     json
// @Success     200 {object} listResp
// @Router      /models/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newListResp(output))
}
