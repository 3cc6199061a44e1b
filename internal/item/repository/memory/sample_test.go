package memory

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	repo "tutorial-api/internal/item/repository"
	"tutorial-api/internal/model"
	"tutorial-api/pkg/log"
)

func names(items []model.SampleItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestListSamples(t *testing.T) {
	r := New(nil, log.NewNop())
	ctx := context.Background()

	tcs := []struct {
		name   string
		offset int
		limit  int
		want   []string
	}{
		{"first page", 0, 10, []string{"Foo", "Bar", "Baz"}},
		{"offset", 1, 10, []string{"Bar", "Baz"}},
		{"limit", 0, 2, []string{"Foo", "Bar"}},
		{"past end", 5, 10, []string{}},
		{"zero limit", 0, 0, []string{}},
		{"negative offset", -3, 1, []string{"Foo"}},
		{"negative limit", 0, -1, []string{}},
		{"max limit", 1, math.MaxInt, []string{"Bar", "Baz"}},
		{"max limit past end", 3, math.MaxInt, []string{}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.ListSamples(ctx, repo.ListSamplesOptions{Offset: tc.offset, Limit: tc.limit})
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestListSamplesCancelled(t *testing.T) {
	r := New(nil, log.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ListSamples(ctx, repo.ListSamplesOptions{Limit: 1})
	assert.ErrorIs(t, err, repo.ErrFailedToList)
}

func TestListSamplesDoesNotAliasCatalogue(t *testing.T) {
	r := New(nil, log.NewNop())
	page, err := r.ListSamples(context.Background(), repo.ListSamplesOptions{Limit: 1})
	require.NoError(t, err)
	page[0].Name = "changed"

	again, err := r.ListSamples(context.Background(), repo.ListSamplesOptions{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "Foo", again[0].Name)
	assert.Equal(t, "Foo", DefaultSamples[0].Name)
}

// Pages behave like slicing the catalogue with bounds clamped.
func TestListSamplesMatchesSlicing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		catalogue := rapid.SliceOf(rapid.StringMatching(`[A-Z][a-z]{2}`)).Draw(rt, "catalogue")
		samples := make([]model.SampleItem, len(catalogue))
		for i, n := range catalogue {
			samples[i] = model.SampleItem{Name: n}
		}
		offset := rapid.IntRange(0, math.MaxInt).Draw(rt, "offset")
		limit := rapid.IntRange(0, math.MaxInt).Draw(rt, "limit")

		r := New(samples, log.NewNop())
		got, err := r.ListSamples(context.Background(), repo.ListSamplesOptions{Offset: offset, Limit: limit})
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		start := min(offset, len(samples))
		end := start + min(limit, len(samples)-start)
		want := samples[start:end]
		if len(got) != len(want) {
			rt.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				rt.Fatalf("item %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
}
