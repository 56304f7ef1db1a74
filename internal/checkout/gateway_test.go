package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewayAlwaysApproves(t *testing.T) {
	gateway := NewSimulatedGateway(1, 0, testLog())

	for i := 0; i < 20; i++ {
		txn, err := gateway.Authorize(150)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(txn, "TXN_"))
	}
}

func TestSimulatedGatewayAlwaysDeclines(t *testing.T) {
	gateway := NewSimulatedGateway(0, 0, testLog())

	for i := 0; i < 20; i++ {
		_, err := gateway.Authorize(150)
		assert.ErrorIs(t, err, errPaiementRefuse)
	}
}

func TestTransactionIDShape(t *testing.T) {
	txn := newTransactionID()

	parts := strings.SplitN(txn, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "TXN", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], 9)
}
