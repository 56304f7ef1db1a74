package admin

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/order"
	"github.com/example/parfumgate/internal/upstream"
)

type fakeAdminAdapter struct {
	parfums       []catalog.Parfum
	users         []User
	orders        []order.Order
	promotions    []Promotion
	updatedStatut string
	createdPromo  bool
}

func (f *fakeAdminAdapter) GetParfums() ([]catalog.Parfum, error) {
	return f.parfums, nil
}

func (f *fakeAdminAdapter) CreateParfum(input ParfumInput) (*upstream.MutationResult, error) {
	return &upstream.MutationResult{Success: true}, nil
}

func (f *fakeAdminAdapter) UpdateParfum(id int64, input ParfumInput) (*upstream.MutationResult, error) {
	return &upstream.MutationResult{Success: true}, nil
}

func (f *fakeAdminAdapter) DeleteParfum(id int64) error {
	return nil
}

func (f *fakeAdminAdapter) ListOrders(filter OrderFilter) ([]order.Order, error) {
	return f.orders, nil
}

func (f *fakeAdminAdapter) OrderDetails(orderID int64) (*order.OrderDetails, error) {
	for _, o := range f.orders {
		if o.ID == orderID {
			return &order.OrderDetails{Order: o}, nil
		}
	}
	return nil, upstream.NewError(upstream.HttpError, "commande introuvable", 404, nil)
}

func (f *fakeAdminAdapter) UpdateOrderStatut(orderID int64, statut string) (*upstream.MutationResult, error) {
	f.updatedStatut = statut
	return &upstream.MutationResult{Success: true}, nil
}

func (f *fakeAdminAdapter) ListUsers() ([]User, error) {
	return f.users, nil
}

func (f *fakeAdminAdapter) UserDetails(userID int64) (*UserDetails, error) {
	return &UserDetails{}, nil
}

func (f *fakeAdminAdapter) UpdateUserPhone(userID int64, telephone string) (*upstream.MutationResult, error) {
	return &upstream.MutationResult{Success: true}, nil
}

func (f *fakeAdminAdapter) ListPromotions() ([]Promotion, error) {
	return f.promotions, nil
}

func (f *fakeAdminAdapter) CreatePromotion(req CreatePromotionRequest) (*upstream.MutationResult, error) {
	f.createdPromo = true
	return &upstream.MutationResult{Success: true}, nil
}

func (f *fakeAdminAdapter) DeletePromotion(id int64) error {
	return nil
}

func (f *fakeAdminAdapter) ListAvisCommandes() ([]order.Avis, error) {
	return nil, nil
}

func (f *fakeAdminAdapter) DeleteAvisCommande(id int64) error {
	return nil
}

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func newTestService(adapter *fakeAdminAdapter) *adminService {
	return &adminService{
		adapter: adapter,
		now:     func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) },
		logger:  testLog(),
	}
}

func TestDashboard(t *testing.T) {
	adapter := &fakeAdminAdapter{
		parfums: []catalog.Parfum{{ID: 1}, {ID: 2}, {ID: 3}},
		users:   []User{{ID: 1}, {ID: 2}},
		orders: []order.Order{
			{ID: 1, Total: 150},
			{ID: 2, Total: 99.5},
		},
	}
	service := newTestService(adapter)

	dashboard, err := service.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalParfums)
	assert.Equal(t, 2, dashboard.TotalUsers)
	assert.Equal(t, 2, dashboard.TotalOrders)
	assert.Equal(t, 249.5, dashboard.Revenue)
}

func TestValidatePromotion(t *testing.T) {
	valid := CreatePromotionRequest{
		ParfumID:           3,
		DiscountPercentage: 20,
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31",
	}

	testTable := []struct {
		name     string
		mutate   func(r CreatePromotionRequest) CreatePromotionRequest
		expected error
	}{
		{
			name:     "valid request",
			mutate:   func(r CreatePromotionRequest) CreatePromotionRequest { return r },
			expected: nil,
		},
		{
			name: "missing parfum",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.ParfumID = 0
				return r
			},
			expected: errParfumRequis,
		},
		{
			name: "discount at lower bound",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.DiscountPercentage = 1
				return r
			},
			expected: nil,
		},
		{
			name: "discount at upper bound",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.DiscountPercentage = 90
				return r
			},
			expected: nil,
		},
		{
			name: "discount below range",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.DiscountPercentage = 0
				return r
			},
			expected: errRemiseInvalide,
		},
		{
			name: "discount above range",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.DiscountPercentage = 91
				return r
			},
			expected: errRemiseInvalide,
		},
		{
			name: "malformed start date",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.StartDate = "01/03/2026"
				return r
			},
			expected: errDateFormat,
		},
		{
			name: "end equals start",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.EndDate = r.StartDate
				return r
			},
			expected: errDatesIncoherentes,
		},
		{
			name: "end before start",
			mutate: func(r CreatePromotionRequest) CreatePromotionRequest {
				r.EndDate = "2026-02-01"
				return r
			},
			expected: errDatesIncoherentes,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePromotion(tc.mutate(valid))
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestCreatePromotionRejectsInvalidRequest(t *testing.T) {
	adapter := &fakeAdminAdapter{}
	service := newTestService(adapter)

	err := service.CreatePromotion(CreatePromotionRequest{ParfumID: 3, DiscountPercentage: 95, StartDate: "2026-03-01", EndDate: "2026-03-31"})
	assert.ErrorIs(t, err, errRemiseInvalide)
	assert.False(t, adapter.createdPromo)
}

func TestPromotionsDeriveActiveFlag(t *testing.T) {
	adapter := &fakeAdminAdapter{promotions: []Promotion{
		{ID: 1, StartDate: "2026-03-01", EndDate: "2026-03-31"},
		{ID: 2, StartDate: "2026-01-01", EndDate: "2026-01-31"},
		{ID: 3, StartDate: "2026-03-01", EndDate: "2026-03-15"},
	}}
	service := newTestService(adapter)

	promotions, err := service.Promotions()
	require.NoError(t, err)

	assert.True(t, promotions[0].Active)
	assert.False(t, promotions[1].Active)
	// the end date counts through its whole day
	assert.True(t, promotions[2].Active)
}

func TestTransitionAllowed(t *testing.T) {
	testTable := []struct {
		from    string
		to      string
		allowed bool
	}{
		{from: order.StatutConfirmee, to: order.StatutEnCours, allowed: true},
		{from: order.StatutConfirmee, to: order.StatutAnnulee, allowed: true},
		{from: order.StatutConfirmee, to: order.StatutLivree, allowed: false},
		{from: order.StatutEnCours, to: order.StatutLivree, allowed: true},
		{from: order.StatutEnCours, to: order.StatutAnnulee, allowed: true},
		{from: order.StatutEnCours, to: order.StatutConfirmee, allowed: false},
		{from: order.StatutLivree, to: order.StatutAnnulee, allowed: false},
		{from: order.StatutAnnulee, to: order.StatutConfirmee, allowed: false},
	}

	for _, tc := range testTable {
		t.Run(tc.from+"_"+tc.to, func(t *testing.T) {
			assert.Equal(t, tc.allowed, transitionAllowed(tc.from, tc.to))
		})
	}
}

func TestUpdateOrderStatut(t *testing.T) {
	adapter := &fakeAdminAdapter{orders: []order.Order{{ID: 1, Statut: order.StatutConfirmee}}}
	service := newTestService(adapter)

	require.NoError(t, service.UpdateOrderStatut(1, order.StatutEnCours))
	assert.Equal(t, order.StatutEnCours, adapter.updatedStatut)
}

func TestUpdateOrderStatutRejectsUnknownStatus(t *testing.T) {
	adapter := &fakeAdminAdapter{orders: []order.Order{{ID: 1, Statut: order.StatutConfirmee}}}
	service := newTestService(adapter)

	err := service.UpdateOrderStatut(1, "expediee")
	assert.ErrorIs(t, err, errStatutInconnu)
	assert.Empty(t, adapter.updatedStatut)
}

func TestUpdateOrderStatutRejectsInvalidTransition(t *testing.T) {
	adapter := &fakeAdminAdapter{orders: []order.Order{{ID: 1, Statut: order.StatutLivree}}}
	service := newTestService(adapter)

	err := service.UpdateOrderStatut(1, order.StatutAnnulee)
	assert.ErrorIs(t, err, errTransitionInvalide)
	assert.Empty(t, adapter.updatedStatut)
}
