package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/cart"
	"github.com/example/parfumgate/internal/order"
	"github.com/example/parfumgate/internal/upstream"
)

type CartReader interface {
	GetPanier(userID int64) ([]cart.Line, error)
}

type OrderPlacer interface {
	CreateOrder(req order.CreateOrderRequest) (*upstream.MutationResult, error)
}

type CheckoutService interface {
	Start(userID int64) (*Session, error)
	Session(id string) (*Session, error)
	SubmitAddress(id string, address Address) (*Session, error)
	ChoosePayment(id, mode string) (*Session, error)
	SubmitCard(id string, card Card) (*Session, error)
	Cancel(id string) error
}

type checkoutService struct {
	store   SessionStore
	carts   CartReader
	orders  OrderPlacer
	gateway PaymentGateway
	now     func() time.Time
	logger  *logrus.Entry
}

func NewService(store SessionStore, carts CartReader, orders OrderPlacer, gateway PaymentGateway, log *logrus.Entry) CheckoutService {
	return &checkoutService{
		store:   store,
		carts:   carts,
		orders:  orders,
		gateway: gateway,
		now:     time.Now,
		logger:  log,
	}
}

// Start opens a checkout session for a user. An empty cart refuses to
// enter the machine.
func (s *checkoutService) Start(userID int64) (*Session, error) {
	lines, err := s.carts.GetPanier(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errPanierVide
	}

	session := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		State:      StateCollectingAddress,
		Total:      cart.ComputeTotal(lines),
		ItemsCount: len(lines),
		CreatedAt:  s.now(),
	}
	s.store.Save(session)

	s.logger.Debugf("start: session %s opened for user %d (%d items, %.2f DH)", session.ID, userID, session.ItemsCount, session.Total)
	return session, nil
}

func (s *checkoutService) Session(id string) (*Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, errSessionIntrouvable
	}
	return session, nil
}

// SubmitAddress validates the delivery form. A failed field keeps the
// machine where it is; re-submitting from the payment step is allowed
// (back navigation).
func (s *checkoutService) SubmitAddress(id string, address Address) (*Session, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	if session.State != StateCollectingAddress && session.State != StateChoosingPayment {
		return nil, errEtatInvalide
	}

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	session.Address = address
	session.State = StateChoosingPayment
	s.store.Save(session)
	return session, nil
}

// ChoosePayment routes the machine: cash on delivery submits the order
// directly, online payment moves on to card collection.
func (s *checkoutService) ChoosePayment(id, mode string) (*Session, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	if session.State != StateChoosingPayment && session.State != StateCollectingCard {
		return nil, errEtatInvalide
	}

	switch mode {
	case order.ModeLivraison:
		session.ModePaiement = mode
		return s.submitOrder(session)
	case order.ModeEnLigne:
		session.ModePaiement = mode
		session.State = StateCollectingCard
		s.store.Save(session)
		return session, nil
	default:
		return nil, errModePaiementInvalide
	}
}

// SubmitCard validates the card, runs the authorization and, on success,
// submits the order with the transaction attached. A decline puts the
// machine back on card collection so the user can retry.
func (s *checkoutService) SubmitCard(id string, card Card) (*Session, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	if session.State != StateCollectingCard {
		return nil, errEtatInvalide
	}

	if err := validateCard(card, s.now()); err != nil {
		return nil, err
	}

	session.State = StateAuthorizingPayment
	s.store.Save(session)

	txn, err := s.gateway.Authorize(session.Total)
	if err != nil {
		session.State = StateCollectingCard
		session.FailureMessage = err.Error()
		s.store.Save(session)
		return nil, err
	}

	session.TransactionID = txn
	session.PaiementValide = true
	session.FailureMessage = ""
	return s.submitOrder(session)
}

// Cancel discards a session. No partial order exists before submission
// succeeds, so there is nothing else to undo.
func (s *checkoutService) Cancel(id string) error {
	s.store.Delete(id)
	return nil
}

func (s *checkoutService) submitOrder(session *Session) (*Session, error) {
	session.State = StateSubmittingOrder
	s.store.Save(session)

	req := order.CreateOrderRequest{
		UserID:       session.UserID,
		Nom:          session.Address.Nom,
		Telephone:    session.Address.Telephone,
		Adresse:      session.Address.Adresse,
		Ville:        session.Address.Ville,
		CodePostal:   session.Address.CodePostal,
		ModePaiement: session.ModePaiement,
	}
	if session.ModePaiement == order.ModeEnLigne {
		req.PaiementValide = session.PaiementValide
		req.TransactionID = session.TransactionID
	}

	result, err := s.orders.CreateOrder(req)
	if err != nil {
		session.State = StateFailed
		session.FailureMessage = upstream.Message(err)
		s.store.Save(session)
		return nil, err
	}
	if !result.Success {
		session.State = StateFailed
		if result.Message != "" {
			session.FailureMessage = result.Message
		} else {
			session.FailureMessage = "impossible de valider la commande"
		}
		s.store.Save(session)
		return nil, upstream.NewError(upstream.ServerAppError, session.FailureMessage, 400, nil)
	}

	session.State = StateDone
	s.store.Delete(session.ID)

	s.logger.Infof("submitOrder: session %s completed for user %d (%s)", session.ID, session.UserID, session.ModePaiement)
	return session, nil
}
