package order

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

// Comment budgets enforced before submission. The per-product form allows
// more room than the whole-order one.
const (
	maxCommentaireParfum   = 500
	maxCommentaireCommande = 300
)

type OrderAdapter interface {
	CreateOrder(req CreateOrderRequest) (*upstream.MutationResult, error)
	GetCommandes(userID int64) ([]Order, error)
	GetOrderDetails(orderID int64) (*OrderDetails, error)
	CancelCommande(userID, orderID int64) (*upstream.MutationResult, error)
}

type AvisAdapter interface {
	GetParfumsAvis(commandeID, userID int64) ([]ParfumAvis, error)
	AddAvis(userID, parfumID, commandeID int64, note int, commentaire string) (*upstream.MutationResult, error)
	AddAvisSimple(userID, commandeID int64, note int, commentaire string) (*upstream.MutationResult, error)
	GetAvisByParfum(parfumID int64) ([]Avis, error)
	GetNoteMoyenne(parfumID int64) (*NoteMoyenne, error)
}

type OrderService interface {
	Commandes(userID int64) ([]Order, error)
	Details(userID, orderID int64) (*OrderDetails, error)
	Cancel(userID, orderID int64) error
	ReviewForm(userID, commandeID int64) ([]ParfumAvis, error)
	SubmitAvis(userID, commandeID, parfumID int64, note int, commentaire string) error
	SubmitAvisSimple(userID, commandeID int64, note int, commentaire string) error
	AvisByParfum(parfumID int64) ([]Avis, error)
	NoteMoyenne(parfumID int64) (*NoteMoyenne, error)
}

type orderService struct {
	orders OrderAdapter
	avis   AvisAdapter
	logger *logrus.Entry
}

func NewService(orders OrderAdapter, avis AvisAdapter, log *logrus.Entry) OrderService {
	return &orderService{
		orders: orders,
		avis:   avis,
		logger: log,
	}
}

func (s *orderService) Commandes(userID int64) ([]Order, error) {
	return s.orders.GetCommandes(userID)
}

func (s *orderService) Details(userID, orderID int64) (*OrderDetails, error) {
	if _, err := s.findOrder(userID, orderID); err != nil {
		return nil, err
	}
	return s.orders.GetOrderDetails(orderID)
}

// Cancel applies the client-side rule before any network call: only a
// confirmed order may be cancelled, everything else gets the explicit
// cannot-cancel message and no request is sent.
func (s *orderService) Cancel(userID, orderID int64) error {
	current, err := s.findOrder(userID, orderID)
	if err != nil {
		return err
	}

	if !CanCancel(current.Statut) {
		return errCannotCancel
	}

	result, err := s.orders.CancelCommande(userID, orderID)
	if err != nil {
		return err
	}
	if !result.Success {
		return upstream.NewError(upstream.ServerAppError, resultMessage(result, "impossible d'annuler la commande"), 400, nil)
	}

	s.logger.Infof("cancel: order %d cancelled by user %d", orderID, userID)
	return nil
}

// ReviewForm returns the per-product review state of a delivered order.
// Orders in any other status have no review affordance.
func (s *orderService) ReviewForm(userID, commandeID int64) ([]ParfumAvis, error) {
	current, err := s.findOrder(userID, commandeID)
	if err != nil {
		return nil, err
	}
	if current.Statut != StatutLivree {
		return nil, errAvisNonEligible
	}

	return s.avis.GetParfumsAvis(commandeID, userID)
}

func (s *orderService) SubmitAvis(userID, commandeID, parfumID int64, note int, commentaire string) error {
	if err := validateNote(note); err != nil {
		return err
	}
	if utf8.RuneCountInString(commentaire) > maxCommentaireParfum {
		return errCommentaireTropLong
	}

	rows, err := s.ReviewForm(userID, commandeID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.ParfumID == parfumID && row.Reviewed() {
			return errAvisDejaDepose
		}
	}

	result, err := s.avis.AddAvis(userID, parfumID, commandeID, note, commentaire)
	if err != nil {
		return err
	}
	if !result.Success {
		return upstream.NewError(upstream.ServerAppError, resultMessage(result, "impossible d'ajouter l'avis"), 400, nil)
	}
	return nil
}

// SubmitAvisSimple is the whole-order variant: one rating for the order,
// no per-product breakdown.
func (s *orderService) SubmitAvisSimple(userID, commandeID int64, note int, commentaire string) error {
	if err := validateNote(note); err != nil {
		return err
	}
	if utf8.RuneCountInString(commentaire) > maxCommentaireCommande {
		return errCommentaireTropLong
	}

	current, err := s.findOrder(userID, commandeID)
	if err != nil {
		return err
	}
	if current.Statut != StatutLivree {
		return errAvisNonEligible
	}

	result, err := s.avis.AddAvisSimple(userID, commandeID, note, commentaire)
	if err != nil {
		return err
	}
	if !result.Success {
		return upstream.NewError(upstream.ServerAppError, resultMessage(result, "impossible d'ajouter l'avis"), 400, nil)
	}
	return nil
}

func (s *orderService) AvisByParfum(parfumID int64) ([]Avis, error) {
	return s.avis.GetAvisByParfum(parfumID)
}

func (s *orderService) NoteMoyenne(parfumID int64) (*NoteMoyenne, error) {
	return s.avis.GetNoteMoyenne(parfumID)
}

func (s *orderService) findOrder(userID, orderID int64) (*Order, error) {
	orders, err := s.orders.GetCommandes(userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, errCommandeIntrouvable
}

func validateNote(note int) error {
	if note == 0 {
		return errNoteRequise
	}
	if note < 1 || note > 5 {
		return errNoteInvalide
	}
	return nil
}

func resultMessage(result *upstream.MutationResult, fallback string) string {
	if result.Message != "" {
		return result.Message
	}
	return fallback
}
