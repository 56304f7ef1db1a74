package cart

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type cartAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewCartAdapter(log *logrus.Entry, api *upstream.Client) *cartAdapter {
	return &cartAdapter{
		api: api,
		log: log,
	}
}

func (a *cartAdapter) GetPanier(userID int64) ([]Line, error) {
	var lines []Line
	if _, err := a.api.Get(fmt.Sprintf("/panier/%d", userID), nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

type addLineRequest struct {
	UserID       int64    `json:"user_id"`
	ParfumID     int64    `json:"parfum_id"`
	Quantite     int      `json:"quantite"`
	PrixUnitaire *float64 `json:"prix_unitaire,omitempty"`
}

func (a *cartAdapter) AddToPanier(userID, parfumID int64, quantite int, prixUnitaire *float64) error {
	body := addLineRequest{
		UserID:       userID,
		ParfumID:     parfumID,
		Quantite:     quantite,
		PrixUnitaire: prixUnitaire,
	}

	var result upstream.MutationResult
	if _, err := a.api.Post("/panier", body, &result); err != nil {
		return err
	}
	return nil
}

func (a *cartAdapter) UpdateQuantite(panierID int64, quantite int) error {
	body := struct {
		Quantite int `json:"quantite"`
	}{
		Quantite: quantite,
	}

	var result upstream.MutationResult
	if _, err := a.api.Put(fmt.Sprintf("/panier/%d", panierID), body, &result); err != nil {
		return err
	}
	return nil
}

// RemovePanier deletes a line. A 404 means the line is already gone,
// which the caller treats as success.
func (a *cartAdapter) RemovePanier(panierID int64) error {
	code, err := a.api.Delete(fmt.Sprintf("/panier/%d", panierID), nil)
	if err != nil && code == http.StatusNotFound {
		a.log.Debugf("removePanier: line %d already removed", panierID)
		return nil
	}
	return err
}
