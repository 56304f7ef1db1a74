package cart

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartAdapter struct {
	lines     []Line
	getErr    error
	added     bool
	addedQty  int
	addedPrix *float64
	updated   bool
	removed   bool
}

func (f *fakeCartAdapter) GetPanier(userID int64) ([]Line, error) {
	return f.lines, f.getErr
}

func (f *fakeCartAdapter) AddToPanier(userID, parfumID int64, quantite int, prixUnitaire *float64) error {
	f.added = true
	f.addedQty = quantite
	f.addedPrix = prixUnitaire
	return nil
}

func (f *fakeCartAdapter) UpdateQuantite(panierID int64, quantite int) error {
	f.updated = true
	return nil
}

func (f *fakeCartAdapter) RemovePanier(panierID int64) error {
	f.removed = true
	return nil
}

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestSummary(t *testing.T) {
	adapter := &fakeCartAdapter{lines: []Line{
		{PanierID: 1, Quantite: 2, PrixUnitaire: 80},
		{PanierID: 2, Quantite: 1, Prix: 100},
	}}
	service := NewService(adapter, testLog())

	summary, err := service.Summary(7)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 260.0, summary.Total)
	assert.Len(t, summary.Items, 2)
}

func TestSummaryEmptyCart(t *testing.T) {
	service := NewService(&fakeCartAdapter{}, testLog())

	summary, err := service.Summary(7)
	require.NoError(t, err)

	assert.NotNil(t, summary.Items)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Total)
}

func TestAddLineValidation(t *testing.T) {
	adapter := &fakeCartAdapter{}
	service := NewService(adapter, testLog())

	err := service.AddLine(7, 0, 1, nil)
	assert.ErrorIs(t, err, errParfumRequis)

	err = service.AddLine(7, 3, 0, nil)
	assert.ErrorIs(t, err, errQuantiteInvalide)

	assert.False(t, adapter.added)
}

func TestAddLineForwardsPromotionalPrice(t *testing.T) {
	adapter := &fakeCartAdapter{}
	service := NewService(adapter, testLog())

	prix := 64.0
	err := service.AddLine(7, 3, 2, &prix)
	require.NoError(t, err)

	assert.True(t, adapter.added)
	assert.Equal(t, 2, adapter.addedQty)
	require.NotNil(t, adapter.addedPrix)
	assert.Equal(t, 64.0, *adapter.addedPrix)
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	adapter := &fakeCartAdapter{}
	service := NewService(adapter, testLog())

	err := service.UpdateQuantity(1, 0)
	assert.ErrorIs(t, err, errQuantiteInvalide)
	assert.False(t, adapter.updated)

	require.NoError(t, service.UpdateQuantity(1, 1))
	assert.True(t, adapter.updated)
}
