package usecase

import (
	"tutorial-api/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

// New creates a new user UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{l: l}
}
