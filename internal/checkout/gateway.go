package checkout

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PaymentGateway authorizes an online payment and returns a transaction
// identifier. A decline is a retryable failure, not a dead end.
type PaymentGateway interface {
	Authorize(amount float64) (string, error)
}

// simulatedGateway stands in for a real acquirer: a fixed processing
// delay and a configurable success rate. The rate is a fixture, not a
// business rule.
type simulatedGateway struct {
	successRate float64
	delay       time.Duration
	log         *logrus.Entry
}

func NewSimulatedGateway(successRate float64, delay time.Duration, log *logrus.Entry) PaymentGateway {
	return &simulatedGateway{
		successRate: successRate,
		delay:       delay,
		log:         log,
	}
}

func (g *simulatedGateway) Authorize(amount float64) (string, error) {
	time.Sleep(g.delay)

	if rand.Float64() >= g.successRate {
		g.log.Debugf("authorize: declined payment of %.2f", amount)
		return "", errPaiementRefuse
	}

	txn := newTransactionID()
	g.log.Debugf("authorize: payment of %.2f accepted, transaction %s", amount, txn)
	return txn, nil
}

func newTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), suffix)
}
