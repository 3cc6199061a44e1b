package http

import (
	"tutorial-api/internal/item"
	"tutorial-api/internal/model"
)

// --- Request DTOs ---

type itemBody struct {
	Name        string   `json:"name"        binding:"required,min=1,max=100" example:"Foo"`
	Description *string  `json:"description" binding:"omitempty,max=300"     example:"A very nice Item"`
	Price       *float64 `json:"price"       binding:"required,gt=0"          example:"35.4"`
	Tax         *float64 `json:"tax"         binding:"omitempty,gte=0"        example:"3.2"`
}

func (b itemBody) toModel() model.Item {
	it := model.Item{
		Name:        b.Name,
		Description: b.Description,
		Tax:         b.Tax,
	}
	if b.Price != nil {
		it.Price = *b.Price
	}
	return it
}

type ownerBody struct {
	Username string  `json:"username"  binding:"required,min=3,max=50" example:"dave"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"     example:"Dave Grohl"`
}

func (b ownerBody) toModel() model.User {
	return model.User{Username: b.Username, FullName: b.FullName}
}

// ---

type listReq struct {
	Skip  int
	Limit int
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{Skip: r.Skip, Limit: r.Limit}
}

// ---

type detailReq struct {
	ItemID string
	Q      *string
	Short  bool
}

func (r detailReq) toInput() item.DetailInput {
	return item.DetailInput{ItemID: r.ItemID, Q: r.Q, Short: r.Short}
}

// ---

type needyReq struct {
	ItemID string
	Needy  string
}

// ---

type createReq = itemBody

func toCreateInput(r createReq) item.CreateInput {
	return item.CreateInput{Item: r.toModel()}
}

// ---

type updateReq struct {
	ItemID int
	Q      *string
	Body   itemBody
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{ItemID: r.ItemID, Item: r.Body.toModel(), Q: r.Q}
}

// ---

// searchReq binds q as a plain string so an empty ?q= skips validation
// and is treated as absent.
type searchReq struct {
	Q string `form:"q" binding:"omitempty,min=3,max=50,alphanumspace"`
}

func (r searchReq) toInput() item.SearchInput {
	if r.Q == "" {
		return item.SearchInput{}
	}
	q := r.Q
	return item.SearchInput{Q: &q}
}

// ---

type headersReq struct {
	UserAgent *string  `header:"User-Agent"`
	XToken    []string `header:"X-Token"`
	AdsID     *string  `header:"-"` // populated from the ads_id cookie
}

// ---

type ownerUpdateBody struct {
	Item       itemBody  `json:"item"`
	User       ownerBody `json:"user"`
	Importance int       `json:"importance" binding:"required,gt=0" example:"5"`
}

type ownerUpdateReq struct {
	ItemID int
	Body   ownerUpdateBody
}

func (r ownerUpdateReq) toInput() item.UpdateWithOwnerInput {
	return item.UpdateWithOwnerInput{
		ItemID:     r.ItemID,
		Item:       r.Body.Item.toModel(),
		Owner:      r.Body.User.toModel(),
		Importance: r.Body.Importance,
	}
}

// --- Response DTOs ---

type itemIDResp struct {
	ItemID int `json:"item_id" example:"5"`
}

type sampleResp struct {
	ItemName string `json:"item_name" example:"Foo"`
}

func newListResp(out item.ListOutput) []sampleResp {
	resp := make([]sampleResp, len(out.Items))
	for i, it := range out.Items {
		resp[i] = sampleResp{ItemName: it.Name}
	}
	return resp
}

type detailResp struct {
	ItemID      string  `json:"item_id"               example:"foo"`
	Q           *string `json:"q,omitempty"           example:"somequery"`
	Description *string `json:"description,omitempty" example:"This is an amazing item that has a long description"`
}

func newDetailResp(out item.DetailOutput) detailResp {
	return detailResp{
		ItemID:      out.ItemID,
		Q:           out.Q,
		Description: out.Description,
	}
}

type needyResp struct {
	ItemID string `json:"item_id" example:"foo"`
	Needy  string `json:"needy"   example:"sooooneedy"`
}

type itemResp struct {
	Name        string   `json:"name"        example:"Foo"`
	Description *string  `json:"description" example:"A very nice Item"`
	Price       float64  `json:"price"       example:"35.4"`
	Tax         *float64 `json:"tax"         example:"3.2"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Tax:         it.Tax,
	}
}

type createResp struct {
	itemResp
	PriceWithTax *float64 `json:"price_with_tax,omitempty" example:"38.6"`
}

func newCreateResp(out item.CreateOutput) createResp {
	return createResp{
		itemResp:     newItemResp(out.Item),
		PriceWithTax: out.PriceWithTax,
	}
}

type updateResp struct {
	ItemID int `json:"item_id" example:"5"`
	itemResp
	Q *string `json:"q,omitempty" example:"somequery"`
}

func newUpdateResp(out item.UpdateOutput) updateResp {
	return updateResp{
		ItemID:   out.ItemID,
		itemResp: newItemResp(out.Item),
		Q:        out.Q,
	}
}

type searchItemResp struct {
	ItemID string `json:"item_id" example:"Foo"`
}

type searchResp struct {
	Items []searchItemResp `json:"items"`
	Q     *string          `json:"q,omitempty" example:"fixedquery"`
}

func newSearchResp(out item.SearchOutput) searchResp {
	items := make([]searchItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = searchItemResp{ItemID: it.Name}
	}
	return searchResp{Items: items, Q: out.Q}
}

type queryListResp struct {
	Q []string `json:"q" example:"foo,bar"`
}

type headersResp struct {
	UserAgent *string  `json:"user_agent" example:"curl/8.5.0"`
	XToken    []string `json:"x_token"    example:"foo,bar"`
	AdsID     *string  `json:"ads_id"     example:"abc123"`
}

func newHeadersResp(r headersReq) headersResp {
	return headersResp{
		UserAgent: r.UserAgent,
		XToken:    r.XToken,
		AdsID:     r.AdsID,
	}
}

type ownerResp struct {
	Username string  `json:"username"  example:"dave"`
	FullName *string `json:"full_name" example:"Dave Grohl"`
}

type ownerUpdateResp struct {
	ItemID     int       `json:"item_id"    example:"5"`
	Item       itemResp  `json:"item"`
	User       ownerResp `json:"user"`
	Importance int       `json:"importance" example:"5"`
}

func newOwnerUpdateResp(out item.UpdateWithOwnerOutput) ownerUpdateResp {
	return ownerUpdateResp{
		ItemID: out.ItemID,
		Item:   newItemResp(out.Item),
		User: ownerResp{
			Username: out.Owner.Username,
			FullName: out.Owner.FullName,
		},
		Importance: out.Importance,
	}
}
