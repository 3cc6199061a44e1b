package usecase

import (
	"context"

	"tutorial-api/internal/item"
	repo "tutorial-api/internal/item/repository"
)

// List returns one page of the sample catalogue. Out of range bounds are
// clamped by the repository.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	items, err := uc.repo.ListSamples(ctx, repo.ListSamplesOptions{
		Offset: input.Skip,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSamples: %v", err)
		return item.ListOutput{}, item.ErrCatalogUnavailable
	}

	return item.ListOutput{Items: items}, nil
}

// Search returns the leading samples together with the query it was given.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) (item.SearchOutput, error) {
	items, err := uc.repo.ListSamples(ctx, repo.ListSamplesOptions{Limit: SearchPageSize})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListSamples: %v", err)
		return item.SearchOutput{}, item.ErrCatalogUnavailable
	}

	return item.SearchOutput{
		Items: items,
		Q:     uc.nonEmpty(input.Q),
	}, nil
}
