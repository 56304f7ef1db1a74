package checkout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/parfumgate/internal/cart"
	"github.com/example/parfumgate/internal/order"
)

func TestStoreHandsOutCopies(t *testing.T) {
	store := NewSessionStore()
	store.Save(&Session{ID: "s1", State: StateCollectingAddress})

	first, ok := store.Get("s1")
	require.True(t, ok)
	first.State = StateFailed
	first.Address.Ville = "Rabat"

	second, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, StateCollectingAddress, second.State)
	assert.Empty(t, second.Address.Ville)
}

func TestStoreSaveDetachesFromCaller(t *testing.T) {
	store := NewSessionStore()

	session := &Session{ID: "s1", State: StateCollectingAddress}
	store.Save(session)
	session.State = StateFailed

	stored, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, StateCollectingAddress, stored.State)
}

func TestConcurrentReadsAndAddressSubmissions(t *testing.T) {
	carts := &fakeCartReader{lines: []cart.Line{{Quantite: 1, PrixUnitaire: 150}}}
	service := newTestService(carts, &fakeOrderPlacer{}, &fakeGateway{})

	session, err := service.Start(7)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = service.SubmitAddress(session.ID, validTestAddress())
		}()
		go func() {
			defer wg.Done()
			if current, err := service.Session(session.ID); err == nil {
				_ = current.State
				_ = current.Address.Ville
			}
		}()
	}
	wg.Wait()

	current, err := service.Session(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StateChoosingPayment, current.State)
	assert.Equal(t, "Casablanca", current.Address.Ville)

	// the session is still usable after the contention
	_, err = service.ChoosePayment(session.ID, order.ModeLivraison)
	assert.NoError(t, err)
}
