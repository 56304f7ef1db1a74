package favorites

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/parfumgate/internal/catalog"
)

type fakeFavoritesAdapter struct {
	wishlistErr   error
	addedPriorite string
}

func (f *fakeFavoritesAdapter) GetFavoris(userID int64) ([]catalog.Parfum, error) {
	return []catalog.Parfum{{ID: 1, ImageURL: "/images/1.jpg"}}, nil
}

func (f *fakeFavoritesAdapter) AddFavori(userID, parfumID int64) error {
	return nil
}

func (f *fakeFavoritesAdapter) RemoveFavori(userID, parfumID int64) error {
	return nil
}

func (f *fakeFavoritesAdapter) IsFavori(userID, parfumID int64) (bool, error) {
	return true, nil
}

func (f *fakeFavoritesAdapter) GetWishlist(userID int64) ([]WishlistEntry, error) {
	return nil, nil
}

func (f *fakeFavoritesAdapter) AddToWishlist(userID, parfumID int64, notePersonnelle, priorite string) error {
	f.addedPriorite = priorite
	return nil
}

func (f *fakeFavoritesAdapter) RemoveFromWishlist(userID, parfumID int64) error {
	return nil
}

func (f *fakeFavoritesAdapter) IsInWishlist(userID, parfumID int64) (bool, error) {
	if f.wishlistErr != nil {
		return false, f.wishlistErr
	}
	return true, nil
}

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestFavorisResolvesImages(t *testing.T) {
	service := NewService(&fakeFavoritesAdapter{}, "http://api.local", testLog())

	parfums, err := service.Favoris(7)
	require.NoError(t, err)
	require.Len(t, parfums, 1)
	assert.Equal(t, "http://api.local/images/1.jpg", parfums[0].ImageURL)
}

func TestAddToWishlistDefaultsPriority(t *testing.T) {
	adapter := &fakeFavoritesAdapter{}
	service := NewService(adapter, "http://api.local", testLog())

	require.NoError(t, service.AddToWishlist(7, 3, "", ""))
	assert.Equal(t, PrioriteMoyenne, adapter.addedPriorite)

	require.NoError(t, service.AddToWishlist(7, 3, "", PrioriteHaute))
	assert.Equal(t, PrioriteHaute, adapter.addedPriorite)
}

func TestIsInWishlistMapsFailureToFalse(t *testing.T) {
	adapter := &fakeFavoritesAdapter{wishlistErr: errors.New("indisponible")}
	service := NewService(adapter, "http://api.local", testLog())

	assert.False(t, service.IsInWishlist(7, 3))

	adapter.wishlistErr = nil
	assert.True(t, service.IsInWishlist(7, 3))
}
