package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sample catalogue
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Request echo
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	UpdateWithOwner(ctx context.Context, input UpdateWithOwnerInput) (UpdateWithOwnerOutput, error)
}
