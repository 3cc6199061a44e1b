package usecase

import (
	"context"

	"tutorial-api/internal/catalog"
	"tutorial-api/internal/model"
)

// Get resolves name to a ModelName. Returns ErrUnknownModel for anything
// outside the declared set.
func (uc *implUseCase) Get(ctx context.Context, name string) (catalog.GetOutput, error) {
	m := model.ModelName(name)
	if !m.IsValid() {
		uc.l.Debugf(ctx, "uc.Get: unknown model %q", name)
		return catalog.GetOutput{}, catalog.ErrUnknownModel
	}
	return catalog.GetOutput{Name: m}, nil
}

// List returns every model name.
func (uc *implUseCase) List(ctx context.Context) (catalog.ListOutput, error) {
	return catalog.ListOutput{Names: model.ModelNames()}, nil
}
