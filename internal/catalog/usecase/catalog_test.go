package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-api/internal/catalog"
	"tutorial-api/internal/model"
	"tutorial-api/pkg/log"
)

func TestGet(t *testing.T) {
	uc := New(log.NewNop())

	out, err := uc.Get(context.Background(), "movistar")
	require.NoError(t, err)
	assert.Equal(t, model.ModelMovistar, out.Name)

	_, err = uc.Get(context.Background(), "arnet")
	assert.ErrorIs(t, err, catalog.ErrUnknownModel)
}

func TestList(t *testing.T) {
	out, err := New(log.NewNop()).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Names, 4)
}
