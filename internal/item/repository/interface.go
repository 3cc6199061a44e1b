package repository

import (
	"context"

	"tutorial-api/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	SampleRepository
}

// SampleRepository reads the sample catalogue.
type SampleRepository interface {
	ListSamples(ctx context.Context, opt ListSamplesOptions) ([]model.SampleItem, error)
}
