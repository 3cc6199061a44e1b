package usecase

import (
	"context"

	"tutorial-api/internal/item"
)

// Detail echoes the item ID and query, adding the long description unless
// Short is set.
func (uc *implUseCase) Detail(ctx context.Context, input item.DetailInput) (item.DetailOutput, error) {
	out := item.DetailOutput{
		ItemID: input.ItemID,
		Q:      uc.nonEmpty(input.Q),
	}
	if !input.Short {
		desc := item.LongDescription
		out.Description = &desc
	}
	return out, nil
}

// Create returns the validated item and, when a tax was given, its price with tax.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	out := item.CreateOutput{Item: input.Item}
	if total, ok := input.Item.PriceWithTax(); ok {
		out.PriceWithTax = &total
	}
	uc.l.Debugf(ctx, "uc.Create: name=%q price=%v", input.Item.Name, input.Item.Price)
	return out, nil
}

// Update echoes the item under its ID, with the query when one was given.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	return item.UpdateOutput{
		ItemID: input.ItemID,
		Item:   input.Item,
		Q:      uc.nonEmpty(input.Q),
	}, nil
}

// UpdateWithOwner echoes an item together with its owner and importance.
func (uc *implUseCase) UpdateWithOwner(ctx context.Context, input item.UpdateWithOwnerInput) (item.UpdateWithOwnerOutput, error) {
	return item.UpdateWithOwnerOutput{
		ItemID:     input.ItemID,
		Item:       input.Item,
		Owner:      input.Owner,
		Importance: input.Importance,
	}, nil
}
