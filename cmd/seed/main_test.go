package main

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellowbooks/internal/place"
)

func TestSamplePlaces_AreValid(t *testing.T) {
	inputs := samplePlaces()
	require.Len(t, inputs, 6)

	for _, in := range inputs {
		assert.NoError(t, in.Validate(), in.Name)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("creates every place", func(t *testing.T) {
		repo := place.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(6)

		n, err := seed(ctx, place.NewService(repo), samplePlaces())

		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		repo := place.NewMockRepository(gomock.NewController(t))
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("boom")),
		)

		n, err := seed(ctx, place.NewService(repo), samplePlaces())

		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Contains(t, err.Error(), "Тэнгэр Ресторан")
	})
}
