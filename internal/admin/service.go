package admin

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/order"
	"github.com/example/parfumgate/internal/upstream"
)

type AdminAdapter interface {
	GetParfums() ([]catalog.Parfum, error)
	CreateParfum(input ParfumInput) (*upstream.MutationResult, error)
	UpdateParfum(id int64, input ParfumInput) (*upstream.MutationResult, error)
	DeleteParfum(id int64) error
	ListOrders(filter OrderFilter) ([]order.Order, error)
	OrderDetails(orderID int64) (*order.OrderDetails, error)
	UpdateOrderStatut(orderID int64, statut string) (*upstream.MutationResult, error)
	ListUsers() ([]User, error)
	UserDetails(userID int64) (*UserDetails, error)
	UpdateUserPhone(userID int64, telephone string) (*upstream.MutationResult, error)
	ListPromotions() ([]Promotion, error)
	CreatePromotion(req CreatePromotionRequest) (*upstream.MutationResult, error)
	DeletePromotion(id int64) error
	ListAvisCommandes() ([]order.Avis, error)
	DeleteAvisCommande(id int64) error
}

type AdminService interface {
	Dashboard() (*Dashboard, error)
	Parfums() ([]catalog.Parfum, error)
	CreateParfum(input ParfumInput) error
	UpdateParfum(id int64, input ParfumInput) error
	DeleteParfum(id int64) error
	Orders(filter OrderFilter) ([]order.Order, error)
	OrderDetails(orderID int64) (*order.OrderDetails, error)
	UpdateOrderStatut(orderID int64, statut string) error
	Users() ([]User, error)
	UserDetails(userID int64) (*UserDetails, error)
	UpdateUserPhone(userID int64, telephone string) error
	Promotions() ([]Promotion, error)
	CreatePromotion(req CreatePromotionRequest) error
	DeletePromotion(id int64) error
	AvisCommandes() ([]order.Avis, error)
	DeleteAvisCommande(id int64) error
}

type adminService struct {
	adapter AdminAdapter
	now     func() time.Time
	logger  *logrus.Entry
}

func NewService(adapter AdminAdapter, log *logrus.Entry) AdminService {
	return &adminService{
		adapter: adapter,
		now:     time.Now,
		logger:  log,
	}
}

// Dashboard aggregates the landing-page counters. Revenue is the sum of
// every order total the upstream reports.
func (s *adminService) Dashboard() (*Dashboard, error) {
	parfums, err := s.adapter.GetParfums()
	if err != nil {
		return nil, err
	}
	users, err := s.adapter.ListUsers()
	if err != nil {
		return nil, err
	}
	orders, err := s.adapter.ListOrders(OrderFilter{})
	if err != nil {
		return nil, err
	}

	revenue := 0.0
	for _, o := range orders {
		revenue += o.Total.Float64()
	}

	return &Dashboard{
		TotalParfums: len(parfums),
		TotalUsers:   len(users),
		TotalOrders:  len(orders),
		Revenue:      revenue,
	}, nil
}

func (s *adminService) Parfums() ([]catalog.Parfum, error) {
	return s.adapter.GetParfums()
}

func (s *adminService) CreateParfum(input ParfumInput) error {
	return mutation(s.adapter.CreateParfum(input))
}

func (s *adminService) UpdateParfum(id int64, input ParfumInput) error {
	return mutation(s.adapter.UpdateParfum(id, input))
}

func (s *adminService) DeleteParfum(id int64) error {
	return s.adapter.DeleteParfum(id)
}

func (s *adminService) Orders(filter OrderFilter) ([]order.Order, error) {
	return s.adapter.ListOrders(filter)
}

func (s *adminService) OrderDetails(orderID int64) (*order.OrderDetails, error) {
	return s.adapter.OrderDetails(orderID)
}

// UpdateOrderStatut validates the transition against the current status
// before the upstream call. The admin side moves orders forward and may
// cancel anything not yet terminal; terminal orders are immutable.
func (s *adminService) UpdateOrderStatut(orderID int64, statut string) error {
	if !knownStatut(statut) {
		return errStatutInconnu
	}

	details, err := s.adapter.OrderDetails(orderID)
	if err != nil {
		return err
	}

	if !transitionAllowed(details.Statut, statut) {
		return errTransitionInvalide
	}

	if err := mutation(s.adapter.UpdateOrderStatut(orderID, statut)); err != nil {
		return err
	}

	s.logger.Infof("updateOrderStatut: order %d moved %s -> %s", orderID, details.Statut, statut)
	return nil
}

func (s *adminService) Users() ([]User, error) {
	return s.adapter.ListUsers()
}

func (s *adminService) UserDetails(userID int64) (*UserDetails, error) {
	return s.adapter.UserDetails(userID)
}

func (s *adminService) UpdateUserPhone(userID int64, telephone string) error {
	return mutation(s.adapter.UpdateUserPhone(userID, telephone))
}

// Promotions lists promotions with the active flag derived locally, so
// the listing never depends on the upstream computing it.
func (s *adminService) Promotions() ([]Promotion, error) {
	promotions, err := s.adapter.ListPromotions()
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range promotions {
		promotions[i].Active = promotions[i].ActiveAt(now)
	}
	return promotions, nil
}

func (s *adminService) CreatePromotion(req CreatePromotionRequest) error {
	if err := validatePromotion(req); err != nil {
		return err
	}
	return mutation(s.adapter.CreatePromotion(req))
}

func (s *adminService) DeletePromotion(id int64) error {
	return s.adapter.DeletePromotion(id)
}

func (s *adminService) AvisCommandes() ([]order.Avis, error) {
	return s.adapter.ListAvisCommandes()
}

func (s *adminService) DeleteAvisCommande(id int64) error {
	return s.adapter.DeleteAvisCommande(id)
}

func validatePromotion(req CreatePromotionRequest) error {
	if req.ParfumID <= 0 {
		return errParfumRequis
	}
	if req.DiscountPercentage < 1 || req.DiscountPercentage > 90 {
		return errRemiseInvalide
	}

	start, err := time.Parse(promotionDateLayout, req.StartDate)
	if err != nil {
		return errDateFormat
	}
	end, err := time.Parse(promotionDateLayout, req.EndDate)
	if err != nil {
		return errDateFormat
	}
	if !end.After(start) {
		return errDatesIncoherentes
	}

	return nil
}

func knownStatut(statut string) bool {
	switch statut {
	case order.StatutConfirmee, order.StatutEnCours, order.StatutLivree, order.StatutAnnulee:
		return true
	}
	return false
}

func transitionAllowed(from, to string) bool {
	switch from {
	case order.StatutConfirmee:
		return to == order.StatutEnCours || to == order.StatutAnnulee
	case order.StatutEnCours:
		return to == order.StatutLivree || to == order.StatutAnnulee
	}
	return false
}

func mutation(result *upstream.MutationResult, err error) error {
	if err != nil {
		return err
	}
	if !result.Success {
		message := result.Message
		if message == "" {
			message = "operation refusee par le serveur"
		}
		return upstream.NewError(upstream.ServerAppError, message, 400, nil)
	}
	return nil
}
