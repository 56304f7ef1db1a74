package cart

import (
	"github.com/sirupsen/logrus"
)

type CartAdapter interface {
	GetPanier(userID int64) ([]Line, error)
	AddToPanier(userID, parfumID int64, quantite int, prixUnitaire *float64) error
	UpdateQuantite(panierID int64, quantite int) error
	RemovePanier(panierID int64) error
}

type CartService interface {
	Summary(userID int64) (*Summary, error)
	AddLine(userID, parfumID int64, quantite int, prixUnitaire *float64) error
	UpdateQuantity(panierID int64, quantite int) error
	RemoveLine(panierID int64) error
}

type cartService struct {
	adapter CartAdapter
	logger  *logrus.Entry
}

func NewService(adapter CartAdapter, log *logrus.Entry) CartService {
	return &cartService{
		adapter: adapter,
		logger:  log,
	}
}

func (s *cartService) Summary(userID int64) (*Summary, error) {
	lines, err := s.adapter.GetPanier(userID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []Line{}
	}

	return &Summary{
		Items: lines,
		Count: len(lines),
		Total: ComputeTotal(lines),
	}, nil
}

// AddLine adds a parfum to the cart. A promotional unit price is forwarded
// verbatim when supplied; otherwise the server prices the line.
func (s *cartService) AddLine(userID, parfumID int64, quantite int, prixUnitaire *float64) error {
	if parfumID <= 0 {
		return errParfumRequis
	}
	if quantite < 1 {
		return errQuantiteInvalide
	}

	return s.adapter.AddToPanier(userID, parfumID, quantite, prixUnitaire)
}

// UpdateQuantity rejects anything below 1 before touching the network;
// the decrement control never sends quantities the cart cannot hold.
func (s *cartService) UpdateQuantity(panierID int64, quantite int) error {
	if quantite < 1 {
		return errQuantiteInvalide
	}

	return s.adapter.UpdateQuantite(panierID, quantite)
}

func (s *cartService) RemoveLine(panierID int64) error {
	return s.adapter.RemovePanier(panierID)
}
