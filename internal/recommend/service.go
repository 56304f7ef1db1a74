package recommend

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
)

type RecommendAdapter interface {
	ByPurchaseHistory(userID int64) ([]catalog.Parfum, error)
	ByFavorites(userID int64) ([]catalog.Parfum, error)
	Trending() ([]catalog.Parfum, error)
	NewParfums() ([]catalog.Parfum, error)
	Similar(parfumID int64) ([]catalog.Parfum, error)
}

// PromotionalSource supplies the promotion tab; the catalog service
// derives it by filtering the full catalog on the active-promotion flag.
type PromotionalSource interface {
	Promotional() ([]catalog.Parfum, error)
}

type RecommendService interface {
	Combined(userID int64) (*Combined, error)
	Similar(parfumID int64) ([]catalog.Parfum, error)
}

type recommendService struct {
	adapter    RecommendAdapter
	promotions PromotionalSource
	logger     *logrus.Entry
}

func NewService(adapter RecommendAdapter, promotions PromotionalSource, log *logrus.Entry) RecommendService {
	return &recommendService{
		adapter:    adapter,
		promotions: promotions,
		logger:     log,
	}
}

// Combined runs the five category queries concurrently and joins them
// all. A failed category resolves to an empty list instead of aborting
// the aggregate; when trending has results, empty categories get
// backfilled with disjoint slices of it so no tab renders empty while
// any signal exists. Promotions are never backfilled.
func (s *recommendService) Combined(userID int64) (*Combined, error) {
	var (
		byHistory   []catalog.Parfum
		byFavorites []catalog.Parfum
		trending    []catalog.Parfum
		promotions  []catalog.Parfum
		newParfums  []catalog.Parfum
	)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		byHistory = s.fetch("purchase-history", func() ([]catalog.Parfum, error) {
			return s.adapter.ByPurchaseHistory(userID)
		})
	}()
	go func() {
		defer wg.Done()
		byFavorites = s.fetch("favorites", func() ([]catalog.Parfum, error) {
			return s.adapter.ByFavorites(userID)
		})
	}()
	go func() {
		defer wg.Done()
		trending = s.fetch("trending", s.adapter.Trending)
	}()
	go func() {
		defer wg.Done()
		promotions = s.fetch("promotions", s.promotions.Promotional)
	}()
	go func() {
		defer wg.Done()
		newParfums = s.fetch("new", s.adapter.NewParfums)
	}()

	wg.Wait()

	if len(trending) > 0 {
		if len(byHistory) == 0 {
			byHistory = sliceOf(trending, 0, 6)
		}
		if len(byFavorites) == 0 {
			byFavorites = sliceOf(trending, 6, 12)
		}
		if len(newParfums) == 0 {
			newParfums = sliceOf(trending, 12, 18)
		}
	}

	return &Combined{
		ByHistory:   byHistory,
		ByFavorites: byFavorites,
		Trending:    trending,
		Promotions:  promotions,
		NewParfums:  newParfums,
	}, nil
}

func (s *recommendService) Similar(parfumID int64) ([]catalog.Parfum, error) {
	parfums, err := s.adapter.Similar(parfumID)
	if err != nil {
		return nil, err
	}
	return sanitize(parfums), nil
}

// fetch isolates one category: an error becomes an empty list, and
// malformed rows are dropped before anything renders them.
func (s *recommendService) fetch(name string, load func() ([]catalog.Parfum, error)) []catalog.Parfum {
	parfums, err := load()
	if err != nil {
		s.logger.Debugf("combined: category %s failed - %v", name, err)
		return []catalog.Parfum{}
	}
	return sanitize(parfums)
}

// sanitize drops rows without a usable id; one malformed row must not
// take the whole list down.
func sanitize(parfums []catalog.Parfum) []catalog.Parfum {
	clean := make([]catalog.Parfum, 0, len(parfums))
	for _, p := range parfums {
		if p.ID != 0 {
			clean = append(clean, p)
		}
	}
	return clean
}

func sliceOf(parfums []catalog.Parfum, from, to int) []catalog.Parfum {
	if from >= len(parfums) {
		return []catalog.Parfum{}
	}
	if to > len(parfums) {
		to = len(parfums)
	}
	return parfums[from:to]
}
