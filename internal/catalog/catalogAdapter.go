package catalog

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type catalogAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewCatalogAdapter(log *logrus.Entry, api *upstream.Client) *catalogAdapter {
	return &catalogAdapter{
		api: api,
		log: log,
	}
}

func (a *catalogAdapter) GetParfums() ([]Parfum, error) {
	var parfums []Parfum
	if _, err := a.api.Get("/parfums", nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *catalogAdapter) GetParfumByID(id int64) (*Parfum, error) {
	var parfum Parfum
	if _, err := a.api.Get(fmt.Sprintf("/parfums/%d", id), nil, &parfum); err != nil {
		return nil, err
	}
	return &parfum, nil
}

func (a *catalogAdapter) SearchParfums(query string) ([]Parfum, error) {
	q := url.Values{}
	q.Set("q", query)

	var parfums []Parfum
	if _, err := a.api.Get("/parfums/search", q, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *catalogAdapter) SaveSearch(userID int64, terme string) error {
	body := struct {
		UserID int64  `json:"user_id"`
		Terme  string `json:"terme_recherche"`
	}{
		UserID: userID,
		Terme:  terme,
	}

	_, err := a.api.Post("/historique-recherche", body, nil)
	return err
}

func (a *catalogAdapter) GetHistorique(userID int64) ([]SearchEntry, error) {
	var entries []SearchEntry
	if _, err := a.api.Get(fmt.Sprintf("/historique-recherche/%d", userID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *catalogAdapter) GetSuggestions(userID int64) ([]Parfum, error) {
	var parfums []Parfum
	if _, err := a.api.Get(fmt.Sprintf("/suggestions/%d", userID), nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}
