package admin

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/order"
	"github.com/example/parfumgate/internal/upstream"
)

type adminAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewAdminAdapter(log *logrus.Entry, api *upstream.Client) *adminAdapter {
	return &adminAdapter{
		api: api,
		log: log,
	}
}

func (a *adminAdapter) GetParfums() ([]catalog.Parfum, error) {
	var parfums []catalog.Parfum
	if _, err := a.api.Get("/parfums", nil, &parfums); err != nil {
		return nil, err
	}
	return parfums, nil
}

func (a *adminAdapter) CreateParfum(input ParfumInput) (*upstream.MutationResult, error) {
	var result upstream.MutationResult
	if _, err := a.api.Post("/admin/parfums", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *adminAdapter) UpdateParfum(id int64, input ParfumInput) (*upstream.MutationResult, error) {
	var result upstream.MutationResult
	if _, err := a.api.Put(fmt.Sprintf("/admin/parfums/%d", id), input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *adminAdapter) DeleteParfum(id int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/admin/parfums/%d", id), nil)
	return err
}

func (a *adminAdapter) ListOrders(filter OrderFilter) ([]order.Order, error) {
	query := url.Values{}
	if filter.Statut != "" && filter.Statut != "all" {
		query.Set("statut", filter.Statut)
	}
	if filter.DateFrom != "" {
		query.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("date_to", filter.DateTo)
	}

	var orders []order.Order
	if _, err := a.api.Get("/admin/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *adminAdapter) OrderDetails(orderID int64) (*order.OrderDetails, error) {
	var details order.OrderDetails
	if _, err := a.api.Get(fmt.Sprintf("/admin/orders/%d/details", orderID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (a *adminAdapter) UpdateOrderStatut(orderID int64, statut string) (*upstream.MutationResult, error) {
	body := struct {
		Statut string `json:"statut"`
	}{
		Statut: statut,
	}

	var result upstream.MutationResult
	if _, err := a.api.Put(fmt.Sprintf("/admin/commandes/%d", orderID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *adminAdapter) ListUsers() ([]User, error) {
	var users []User
	if _, err := a.api.Get("/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *adminAdapter) UserDetails(userID int64) (*UserDetails, error) {
	var details UserDetails
	if _, err := a.api.Get(fmt.Sprintf("/admin/users/%d", userID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (a *adminAdapter) UpdateUserPhone(userID int64, telephone string) (*upstream.MutationResult, error) {
	body := struct {
		Telephone string `json:"telephone"`
	}{
		Telephone: telephone,
	}

	var result upstream.MutationResult
	if _, err := a.api.Put(fmt.Sprintf("/admin/users/%d/phone", userID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *adminAdapter) ListPromotions() ([]Promotion, error) {
	var promotions []Promotion
	if _, err := a.api.Get("/admin/promotions", nil, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (a *adminAdapter) CreatePromotion(req CreatePromotionRequest) (*upstream.MutationResult, error) {
	var result upstream.MutationResult
	if _, err := a.api.Post("/admin/promotions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *adminAdapter) DeletePromotion(id int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/admin/promotions/%d", id), nil)
	return err
}

func (a *adminAdapter) ListAvisCommandes() ([]order.Avis, error) {
	var avis []order.Avis
	if _, err := a.api.Get("/admin/avis-commandes", nil, &avis); err != nil {
		return nil, err
	}
	return avis, nil
}

func (a *adminAdapter) DeleteAvisCommande(id int64) error {
	_, err := a.api.Delete(fmt.Sprintf("/admin/avis-commandes/%d", id), nil)
	return err
}
