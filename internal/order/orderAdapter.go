package order

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type orderAdapter struct {
	api *upstream.Client
	log *logrus.Entry
}

func NewOrderAdapter(log *logrus.Entry, api *upstream.Client) *orderAdapter {
	return &orderAdapter{
		api: api,
		log: log,
	}
}

func (a *orderAdapter) CreateOrder(req CreateOrderRequest) (*upstream.MutationResult, error) {
	var result upstream.MutationResult
	if _, err := a.api.Post("/achat", req, &result); err != nil {
		a.log.Debugf("createOrder: failed for user %d - %v", req.UserID, err)
		return nil, err
	}
	return &result, nil
}

func (a *orderAdapter) GetCommandes(userID int64) ([]Order, error) {
	var orders []Order
	if _, err := a.api.Get(fmt.Sprintf("/commandes/%d", userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *orderAdapter) GetOrderDetails(orderID int64) (*OrderDetails, error) {
	var details OrderDetails
	if _, err := a.api.Get(fmt.Sprintf("/commandes/%d/details", orderID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (a *orderAdapter) CancelCommande(userID, orderID int64) (*upstream.MutationResult, error) {
	var result upstream.MutationResult
	if _, err := a.api.Delete(fmt.Sprintf("/commandes/%d/%d", userID, orderID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
