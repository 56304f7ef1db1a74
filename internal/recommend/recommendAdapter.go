package recommend

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/upstream"
)

type recommendAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewRecommendAdapter(log *logrus.Entry, api *upstream.Client) *recommendAdapter {
	return &recommendAdapter{
		api: api,
		log: log,
	}
}

func (a *recommendAdapter) ByPurchaseHistory(userID int64) ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	path := fmt.Sprintf("/recommendations/purchase-history/%d", userID)
	if _, err := a.api.Get(path, nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *recommendAdapter) ByFavorites(userID int64) ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	path := fmt.Sprintf("/recommendations/favorites/%d", userID)
	if _, err := a.api.Get(path, nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *recommendAdapter) Trending() ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	if _, err := a.api.Get("/parfums/trending", nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *recommendAdapter) NewParfums() ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	if _, err := a.api.Get("/parfums/new", nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *recommendAdapter) Similar(parfumID int64) ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	path := fmt.Sprintf("/parfums/similaires/%d", parfumID)
	if _, err := a.api.Get(path, nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}
