package usecase

import (
	"tutorial-api/internal/item/repository"
	"tutorial-api/pkg/log"
)

// SearchPageSize is how many samples Search returns.
const SearchPageSize = 2

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
