package memory

import (
	"fmt"

	"tutorial-api/internal/item/repository"
	"tutorial-api/internal/model"
	"tutorial-api/pkg/log"
)

// DefaultSamples is the sample catalogue served when New is given none.
var DefaultSamples = []model.SampleItem{
	{Name: "Foo"},
	{Name: "Bar"},
	{Name: "Baz"},
}

type implRepository struct {
	samples []model.SampleItem
	l       log.Logger
}

// New creates a read-only in-memory Repository over samples.
// A nil samples slice selects DefaultSamples.
func New(samples []model.SampleItem, l log.Logger) repository.Repository {
	if samples == nil {
		samples = DefaultSamples
	}
	cp := make([]model.SampleItem, len(samples))
	copy(cp, samples)
	return &implRepository{samples: cp, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/memory.%s", method)
}
