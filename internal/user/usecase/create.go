package usecase

import (
	"context"
	"strings"

	"tutorial-api/internal/model"
	"tutorial-api/internal/user"
)

// Create builds the public view of a new user. The password is dropped here
// so no response model can carry it.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.CreateOutput, error) {
	uc.l.Infof(ctx, "uc.Create: username=%q", input.Username)

	return user.CreateOutput{
		User: model.User{
			Username: input.Username,
			FullName: input.FullName,
		},
		Email: strings.ToLower(input.Email),
	}, nil
}
