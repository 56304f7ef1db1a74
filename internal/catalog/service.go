package catalog

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

const (
	SortPriceAsc  = "asc"
	SortPriceDesc = "desc"
)

type CatalogAdapter interface {
	GetParfums() ([]Parfum, error)
	GetParfumByID(id int64) (*Parfum, error)
	SearchParfums(query string) ([]Parfum, error)
	SaveSearch(userID int64, terme string) error
	GetHistorique(userID int64) ([]SearchEntry, error)
	GetSuggestions(userID int64) ([]Parfum, error)
}

type CatalogService interface {
	Browse(categorie, sortOrder string) ([]Parfum, error)
	Parfum(id int64) (*Parfum, error)
	Search(userID int64, query string) ([]Parfum, error)
	Promotional() ([]Parfum, error)
	Historique(userID int64) ([]SearchEntry, error)
	Suggestions(userID int64) ([]Parfum, error)
}

type catalogService struct {
	adapter      CatalogAdapter
	imageBaseURL string
	logger       *logrus.Entry
}

func NewService(adapter CatalogAdapter, imageBaseURL string, log *logrus.Entry) CatalogService {
	return &catalogService{
		adapter:      adapter,
		imageBaseURL: imageBaseURL,
		logger:       log,
	}
}

// Browse lists the catalog with the client-side category filter and price
// sort the listing screen applies.
func (s *catalogService) Browse(categorie, sortOrder string) ([]Parfum, error) {
	parfums, err := s.adapter.GetParfums()
	if err != nil {
		return nil, err
	}

	parfums = FilterByCategorie(parfums, categorie)
	SortByPrice(parfums, sortOrder)

	return s.resolveImages(parfums), nil
}

func (s *catalogService) Parfum(id int64) (*Parfum, error) {
	parfum, err := s.adapter.GetParfumByID(id)
	if err != nil {
		return nil, err
	}
	parfum.ImageURL = upstream.ResolveImageURL(s.imageBaseURL, parfum.ImageURL)
	return parfum, nil
}

// Search queries the catalog and records the term in the user's search
// history. A history write failure does not fail the search.
func (s *catalogService) Search(userID int64, query string) ([]Parfum, error) {
	parfums, err := s.adapter.SearchParfums(query)
	if err != nil {
		return nil, err
	}

	if userID != 0 && query != "" {
		if err := s.adapter.SaveSearch(userID, query); err != nil {
			s.logger.Debugf("search: failed to save history for user %d - %v", userID, err)
		}
	}

	return s.resolveImages(parfums), nil
}

// Promotional is the full catalog filtered on the active-promotion flag,
// derived client-side since the upstream API has no dedicated endpoint.
func (s *catalogService) Promotional() ([]Parfum, error) {
	parfums, err := s.adapter.GetParfums()
	if err != nil {
		return nil, err
	}

	promoted := make([]Parfum, 0, len(parfums))
	for _, p := range parfums {
		if p.HasActivePromotion {
			promoted = append(promoted, p)
		}
	}

	return s.resolveImages(promoted), nil
}

func (s *catalogService) Historique(userID int64) ([]SearchEntry, error) {
	return s.adapter.GetHistorique(userID)
}

func (s *catalogService) Suggestions(userID int64) ([]Parfum, error) {
	parfums, err := s.adapter.GetSuggestions(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveImages(parfums), nil
}

func (s *catalogService) resolveImages(parfums []Parfum) []Parfum {
	for i := range parfums {
		parfums[i].ImageURL = upstream.ResolveImageURL(s.imageBaseURL, parfums[i].ImageURL)
	}
	return parfums
}

// FilterByCategorie keeps the parfums of one category; an empty or "tous"
// filter keeps everything.
func FilterByCategorie(parfums []Parfum, categorie string) []Parfum {
	if categorie == "" || categorie == "tous" {
		return parfums
	}

	filtered := make([]Parfum, 0, len(parfums))
	for _, p := range parfums {
		if p.Categorie == categorie {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortByPrice orders parfums by their original price. Any order other
// than asc/desc leaves the server order untouched.
func SortByPrice(parfums []Parfum, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(parfums, func(i, j int) bool {
			return parfums[i].Prix < parfums[j].Prix
		})
	case SortPriceDesc:
		sort.SliceStable(parfums, func(i, j int) bool {
			return parfums[i].Prix > parfums[j].Prix
		})
	}
}
