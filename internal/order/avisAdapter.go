package order

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type avisAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewAvisAdapter(log *logrus.Entry, api *upstream.Client) *avisAdapter {
	return &avisAdapter{
		api: api,
		log: log,
	}
}

// GetParfumsAvis is the review pre-check: the parfums of an order with
// the reviews the user already left on them.
func (a *avisAdapter) GetParfumsAvis(commandeID, userID int64) ([]ParfumAvis, error) {
	var rows []ParfumAvis
	path := fmt.Sprintf("/commandes/%d/parfums-avis/%d", commandeID, userID)
	if _, err := a.api.Get(path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

type addAvisRequest struct {
	UserID      int64  `json:"user_id"`
	ParfumID    int64  `json:"parfum_id"`
	CommandeID  int64  `json:"commande_id"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}

func (a *avisAdapter) AddAvis(userID, parfumID, commandeID int64, note int, commentaire string) (*upstream.MutationResult, error) {
	body := addAvisRequest{
		UserID:      userID,
		ParfumID:    parfumID,
		CommandeID:  commandeID,
		Note:        note,
		Commentaire: commentaire,
	}

	var result upstream.MutationResult
	if _, err := a.api.Post("/avis", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type addAvisSimpleRequest struct {
	UserID      int64  `json:"user_id"`
	CommandeID  int64  `json:"commande_id"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}

func (a *avisAdapter) AddAvisSimple(userID, commandeID int64, note int, commentaire string) (*upstream.MutationResult, error) {
	body := addAvisSimpleRequest{
		UserID:      userID,
		CommandeID:  commandeID,
		Note:        note,
		Commentaire: commentaire,
	}

	var result upstream.MutationResult
	if _, err := a.api.Post("/avis-commande-simple", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *avisAdapter) GetAvisByParfum(parfumID int64) ([]Avis, error) {
	var avis []Avis
	if _, err := a.api.Get(fmt.Sprintf("/avis/parfum/%d", parfumID), nil, &avis); err != nil {
		return nil, err
	}
	return avis, nil
}

func (a *avisAdapter) GetNoteMoyenne(parfumID int64) (*NoteMoyenne, error) {
	var note NoteMoyenne
	if _, err := a.api.Get(fmt.Sprintf("/avis/moyenne/%d", parfumID), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}
