package http

import (
	"github.com/gin-gonic/gin"

	"tutorial-api/pkg/response"
)

// Get godoc
// @Summary     Read an item by numeric ID
// @Description Echoes the item_id path parameter, which must be an integer.
// @Tags        Items
// @Produce     json
// @Param       item_id path int true "Item ID"
// @Success     200 {object} itemIDResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items/{item_id} [GET]
func (h *handler) Get(c *gin.Context) {
	id, err := h.processItemIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, itemIDResp{ItemID: id})
}

// List godoc
// @Summary     List sample items
// @Description Returns a page of the sample catalogue.
// @Tags        Items
// @Produce     json
// @Param       skip  query int false "Items to skip (default: 0)"
// @Param       limit query int false "Page size (default: 10)"
// @Success     200 {array}  sampleResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newListResp(output))
}

// DetailOptional godoc
// @Summary     Read an item with an optional query
// @Description Echoes item_id, plus q when it is given.
// @Tags        Items
// @Produce     json
// @Param       item_id path  string true  "Item ID"
// @Param       q       query string false "Free-form query"
// @Success     200 {object} detailResp
// @Router      /items2/{item_id} [GET]
func (h *handler) DetailOptional(c *gin.Context) {
	h.detail(c, false)
}

// DetailShort godoc
// @Summary     Read an item with a boolean flag
// @Description Echoes item_id and q. Adds a long description unless short is true.
// @Tags        Items
// @Produce     json
// @Param       item_id path  string true  "Item ID"
// @Param       q       query string false "Free-form query"
// @Param       short   query bool   false "Omit the description (1/0, true/false, on/off, yes/no)"
// @Success     200 {object} detailResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items3/{item_id} [GET]
func (h *handler) DetailShort(c *gin.Context) {
	h.detail(c, true)
}

func (h *handler) detail(c *gin.Context, withShort bool) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c, withShort)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newDetailResp(output))
}

// DetailNeedy godoc
// @Summary     Read an item with a required query
// @Description Fails with 422 when needy is missing.
// @Tags        Items
// @Produce     json
// @Param       item_id path  string true "Item ID"
// @Param       needy   query string true "Required query parameter"
// @Success     200 {object} needyResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items4/{item_id} [GET]
func (h *handler) DetailNeedy(c *gin.Context) {
	req, err := h.processNeedyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, needyResp{ItemID: req.ItemID, Needy: req.Needy})
}

// Create godoc
// @Summary     Create an item
// @Description Validates the item body and returns it, with price_with_tax when tax is set.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body itemBody true "Item"
// @Success     200 {object} createResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, toCreateInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newCreateResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Combines a path parameter, an optional query and a body.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       item_id path  int      true  "Item ID"
// @Param       q       query string   false "Free-form query"
// @Param       body    body  itemBody true  "Item"
// @Success     200 {object} updateResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items/{item_id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newUpdateResp(output))
}

// Search godoc
// @Summary     Search with a constrained query
// @Description q, when given, must be 3 to 50 letters, digits or spaces.
// @Tags        Items
// @Produce     json
// @Param       q query string false "Search query" minlength(3) maxlength(50)
// @Success     200 {object} searchResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items5/ [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newSearchResp(output))
}

// QueryList godoc
// @Summary     Repeated query parameter
// @Description Returns every q value; defaults to ["foo", "bar"].
// @Tags        Items
// @Produce     json
// @Param       q query []string false "Repeated query" collectionFormat(multi)
// @Success     200 {object} queryListResp
// @Router      /items6/ [GET]
func (h *handler) QueryList(c *gin.Context) {
	response.JSON(c, queryListResp{Q: h.processQueryListReq(c)})
}

// Headers godoc
// @Summary     Headers and cookies
// @Description Echoes the User-Agent header, every X-Token header and the ads_id cookie.
// @Tags        Items
// @Produce     json
// @Param       User-Agent header string false "User agent"
// @Param       X-Token    header string false "Token, may repeat"
// @Param       ads_id     header string false "Sent as the ads_id cookie"
// @Success     200 {object} headersResp
// @Router      /items7/ [GET]
func (h *handler) Headers(c *gin.Context) {
	req, err := h.processHeadersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, newHeadersResp(req))
}

// UpdateWithOwner godoc
// @Summary     Update an item with several body parameters
// @Description The body carries an item, its owner and an importance greater than zero.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       item_id path int             true "Item ID"
// @Param       body    body ownerUpdateBody true "Item, owner and importance"
// @Success     200 {object} ownerUpdateResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items8/{item_id} [PUT]
func (h *handler) UpdateWithOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOwnerUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateWithOwner(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateWithOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, newOwnerUpdateResp(output))
}
