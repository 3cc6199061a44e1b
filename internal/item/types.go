package item

import "tutorial-api/internal/model"

// LongDescription is attached to item details unless the short form is asked for.
const LongDescription = "This is an amazing item that has a long description"

// --- UseCase Inputs ---

type ListInput struct {
	Skip  int
	Limit int
}

type SearchInput struct {
	Q *string
}

type DetailInput struct {
	ItemID string
	Q      *string
	Short  bool
}

type CreateInput struct {
	Item model.Item
}

type UpdateInput struct {
	ItemID int
	Item   model.Item
	Q      *string
}

type UpdateWithOwnerInput struct {
	ItemID     int
	Item       model.Item
	Owner      model.User
	Importance int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []model.SampleItem
}

type SearchOutput struct {
	Items []model.SampleItem
	Q     *string
}

type DetailOutput struct {
	ItemID      string
	Q           *string
	Description *string
}

type CreateOutput struct {
	Item         model.Item
	PriceWithTax *float64
}

type UpdateOutput struct {
	ItemID int
	Item   model.Item
	Q      *string
}

type UpdateWithOwnerOutput struct {
	ItemID     int
	Item       model.Item
	Owner      model.User
	Importance int
}
