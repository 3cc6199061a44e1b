package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tutorial-api/pkg/errors"
	"tutorial-api/pkg/validation"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
	adsIDCookie  = "ads_id"
)

var defaultQueryList = []string{"foo", "bar"}

// processItemIDReq parses the integer item_id path parameter.
func (h *handler) processItemIDReq(c *gin.Context) (int, error) {
	p := validation.NewParams(c)
	id := p.PathInt("item_id")
	return id, p.Err()
}

// processListReq parses skip and limit, which must not be negative.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	p := validation.NewParams(c)
	req := listReq{
		Skip:  p.QueryInt("skip", defaultSkip),
		Limit: p.QueryInt("limit", defaultLimit),
	}
	p.Check(req.Skip >= 0, pkgErrors.NewFieldError(pkgErrors.LocQuery, "skip", pkgErrors.TypeValue, "must be at least 0"))
	p.Check(req.Limit >= 0, pkgErrors.NewFieldError(pkgErrors.LocQuery, "limit", pkgErrors.TypeValue, "must be at least 0"))
	return req, p.Err()
}

// processDetailReq parses the string item_id, the optional q and, when
// withShort is set, the short flag.
func (h *handler) processDetailReq(c *gin.Context, withShort bool) (detailReq, error) {
	p := validation.NewParams(c)
	req := detailReq{
		ItemID: p.PathString("item_id"),
		Q:      p.QueryString("q"),
		Short:  true,
	}
	if withShort {
		req.Short = p.QueryBool("short", false)
	}
	return req, p.Err()
}

// processNeedyReq parses item_id and the required needy query parameter.
func (h *handler) processNeedyReq(c *gin.Context) (needyReq, error) {
	p := validation.NewParams(c)
	req := needyReq{
		ItemID: p.PathString("item_id"),
		Needy:  p.RequiredQuery("needy"),
	}
	return req, p.Err()
}

// processCreateReq binds and validates the item body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, validation.FromBindError(pkgErrors.LocBody, err)
	}
	return req, nil
}

// processUpdateReq parses item_id and q, then binds the item body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	p := validation.NewParams(c)
	req := updateReq{
		ItemID: p.PathInt("item_id"),
		Q:      p.QueryString("q"),
	}
	if err := p.Err(); err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req.Body); err != nil {
		return req, validation.FromBindError(pkgErrors.LocBody, err)
	}
	return req, nil
}

// processSearchReq binds and validates the optional q query parameter.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, validation.FromBindError(pkgErrors.LocQuery, err)
	}
	return req, nil
}

// processQueryListReq collects every q value, falling back to the defaults.
func (h *handler) processQueryListReq(c *gin.Context) []string {
	q := c.QueryArray("q")
	if len(q) == 0 {
		return append([]string(nil), defaultQueryList...)
	}
	return q
}

// processHeadersReq binds the User-Agent and X-Token headers and the ads_id cookie.
func (h *handler) processHeadersReq(c *gin.Context) (headersReq, error) {
	var req headersReq
	if err := c.ShouldBindHeader(&req); err != nil {
		return req, validation.FromBindError(pkgErrors.LocHeader, err)
	}
	if adsID, err := c.Cookie(adsIDCookie); err == nil {
		req.AdsID = &adsID
	}
	return req, nil
}

// processOwnerUpdateReq parses item_id, then binds the item, user and importance body.
func (h *handler) processOwnerUpdateReq(c *gin.Context) (ownerUpdateReq, error) {
	p := validation.NewParams(c)
	req := ownerUpdateReq{ItemID: p.PathInt("item_id")}
	if err := p.Err(); err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req.Body); err != nil {
		return req, validation.FromBindError(pkgErrors.LocBody, err)
	}
	return req, nil
}
