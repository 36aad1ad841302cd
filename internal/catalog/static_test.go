package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/videogames-portal/internal/config"
)

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		ListDelay:   time.Millisecond,
		DetailDelay: time.Millisecond,
	}
}

func TestListReturnsFixedCatalogInOrder(t *testing.T) {
	provider := NewStaticProvider(testCatalogConfig())

	items, err := provider.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)

	wantTitles := []string{
		"The Legend of Zelda: Breath of the Wild",
		"God of War",
		"Cyberpunk 2077",
		"Super Mario Odyssey",
		"Elden Ring",
	}
	for i, game := range items {
		assert.Equal(t, wantTitles[i], game.Title)
		assert.NotEmpty(t, game.ID)
		assert.NotEmpty(t, game.Description)
		assert.NotEmpty(t, game.ImageURL)
	}
}

func TestListIsStableAcrossCalls(t *testing.T) {
	provider := NewStaticProvider(testCatalogConfig())

	first, err := provider.List(context.Background())
	require.NoError(t, err)
	second, err := provider.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetByIDKnownItem(t *testing.T) {
	provider := NewStaticProvider(testCatalogConfig())

	game, err := provider.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk 2077", game.Title)
	assert.Equal(t, "RPG", game.Genre)
	assert.Equal(t, 7.8, game.Rating)
}

func TestGetByIDDetailDescriptionIsExtended(t *testing.T) {
	provider := NewStaticProvider(testCatalogConfig())

	items, err := provider.List(context.Background())
	require.NoError(t, err)

	detail, err := provider.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Greater(t, len(detail.Description), len(items[0].Description))
}

func TestGetByIDUnknownItem(t *testing.T) {
	provider := NewStaticProvider(testCatalogConfig())

	_, err := provider.GetByID(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "999", notFound.ID)
}

func TestProviderHonorsCancellation(t *testing.T) {
	provider := NewStaticProvider(config.CatalogConfig{
		ListDelay:   time.Minute,
		DetailDelay: time.Minute,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := provider.List(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	_, err = provider.GetByID(ctx, "1")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
