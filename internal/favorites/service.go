package favorites

import (
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/upstream"
)

type FavoritesAdapter interface {
	GetFavoris(userID int64) ([]catalog.Parfum, error)
	AddFavori(userID, parfumID int64) error
	RemoveFavori(userID, parfumID int64) error
	IsFavori(userID, parfumID int64) (bool, error)
	GetWishlist(userID int64) ([]WishlistEntry, error)
	AddToWishlist(userID, parfumID int64, notePersonnelle, priorite string) error
	RemoveFromWishlist(userID, parfumID int64) error
	IsInWishlist(userID, parfumID int64) (bool, error)
}

type FavoritesService interface {
	Favoris(userID int64) ([]catalog.Parfum, error)
	AddFavori(userID, parfumID int64) error
	RemoveFavori(userID, parfumID int64) error
	IsFavori(userID, parfumID int64) (bool, error)
	Wishlist(userID int64) ([]WishlistEntry, error)
	AddToWishlist(userID, parfumID int64, notePersonnelle, priorite string) error
	RemoveFromWishlist(userID, parfumID int64) error
	IsInWishlist(userID, parfumID int64) bool
}

type favoritesService struct {
	adapter      FavoritesAdapter
	imageBaseURL string
	logger       *logrus.Entry
}

func NewService(adapter FavoritesAdapter, imageBaseURL string, log *logrus.Entry) FavoritesService {
	return &favoritesService{
		adapter:      adapter,
		imageBaseURL: imageBaseURL,
		logger:       log,
	}
}

func (s *favoritesService) Favoris(userID int64) ([]catalog.Parfum, error) {
	parfums, err := s.adapter.GetFavoris(userID)
	if err != nil {
		return nil, err
	}
	for i := range parfums {
		parfums[i].ImageURL = upstream.ResolveImageURL(s.imageBaseURL, parfums[i].ImageURL)
	}
	return parfums, nil
}

func (s *favoritesService) AddFavori(userID, parfumID int64) error {
	return s.adapter.AddFavori(userID, parfumID)
}

func (s *favoritesService) RemoveFavori(userID, parfumID int64) error {
	return s.adapter.RemoveFavori(userID, parfumID)
}

func (s *favoritesService) IsFavori(userID, parfumID int64) (bool, error) {
	return s.adapter.IsFavori(userID, parfumID)
}

func (s *favoritesService) Wishlist(userID int64) ([]WishlistEntry, error) {
	entries, err := s.adapter.GetWishlist(userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ImageURL = upstream.ResolveImageURL(s.imageBaseURL, entries[i].ImageURL)
	}
	return entries, nil
}

// AddToWishlist defaults the priority to "moyenne" the way the wishlist
// form does.
func (s *favoritesService) AddToWishlist(userID, parfumID int64, notePersonnelle, priorite string) error {
	if priorite == "" {
		priorite = PrioriteMoyenne
	}
	return s.adapter.AddToWishlist(userID, parfumID, notePersonnelle, priorite)
}

func (s *favoritesService) RemoveFromWishlist(userID, parfumID int64) error {
	return s.adapter.RemoveFromWishlist(userID, parfumID)
}

// IsInWishlist maps lookup failures to false: the wishlist badge is
// cosmetic and must not break the product screen.
func (s *favoritesService) IsInWishlist(userID, parfumID int64) bool {
	inWishlist, err := s.adapter.IsInWishlist(userID, parfumID)
	if err != nil {
		s.logger.Debugf("isInWishlist: lookup failed for user %d parfum %d - %v", userID, parfumID, err)
		return false
	}
	return inWishlist
}
