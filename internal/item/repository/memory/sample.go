package memory

import (
	"context"

	repo "tutorial-api/internal/item/repository"
	"tutorial-api/internal/model"
)

// ListSamples returns samples[offset:offset+limit], clamped to the catalogue.
// The returned slice is a copy.
func (r *implRepository) ListSamples(ctx context.Context, opt repo.ListSamplesOptions) ([]model.SampleItem, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSamples"), err)
		return nil, repo.ErrFailedToList
	}

	start := clamp(opt.Offset, 0, len(r.samples))
	end := start
	if opt.Limit > 0 {
		end = start + min(opt.Limit, len(r.samples)-start)
	}

	page := make([]model.SampleItem, end-start)
	copy(page, r.samples[start:end])
	return page, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
