package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	valid := Address{
		Nom:       "Yasmine Alaoui",
		Telephone: "0612345678",
		Adresse:   "12 rue des Orangers",
		Ville:     "Casablanca",
	}

	testTable := []struct {
		name     string
		mutate   func(a Address) Address
		expected error
	}{
		{
			name:     "valid address",
			mutate:   func(a Address) Address { return a },
			expected: nil,
		},
		{
			name:     "blank name",
			mutate:   func(a Address) Address { a.Nom = "   "; return a },
			expected: errNomRequis,
		},
		{
			name:     "phone with too few digits",
			mutate:   func(a Address) Address { a.Telephone = "06123"; return a },
			expected: errTelephoneInvalide,
		},
		{
			name:     "formatted phone still counts its digits",
			mutate:   func(a Address) Address { a.Telephone = "06 12 34 56 78"; return a },
			expected: nil,
		},
		{
			name:     "blank street",
			mutate:   func(a Address) Address { a.Adresse = ""; return a },
			expected: errAdresseRequise,
		},
		{
			name:     "blank city",
			mutate:   func(a Address) Address { a.Ville = ""; return a },
			expected: errVilleRequise,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAddress(tc.mutate(valid))
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestValidateCard(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	valid := Card{
		Numero:         "4111 1111 1111 1111",
		NomTitulaire:   "Yasmine Alaoui",
		DateExpiration: "03/27",
		CVV:            "123",
	}

	testTable := []struct {
		name     string
		mutate   func(c Card) Card
		expected error
	}{
		{
			name:     "valid card with display spacing",
			mutate:   func(c Card) Card { return c },
			expected: nil,
		},
		{
			name:     "fourteen digits rejected",
			mutate:   func(c Card) Card { c.Numero = "4111 1111 1111"; return c },
			expected: errCarteInvalide,
		},
		{
			name:     "letters in the number rejected",
			mutate:   func(c Card) Card { c.Numero = "4111abcd11111111"; return c },
			expected: errCarteInvalide,
		},
		{
			name:     "holder too short",
			mutate:   func(c Card) Card { c.NomTitulaire = " A "; return c },
			expected: errTitulaireRequis,
		},
		{
			name:     "expired card",
			mutate:   func(c Card) Card { c.DateExpiration = "01/20"; return c },
			expected: errCarteExpiree,
		},
		{
			name:     "previous month of the current year expired",
			mutate:   func(c Card) Card { c.DateExpiration = "02/26"; return c },
			expected: errCarteExpiree,
		},
		{
			name:     "current month still valid",
			mutate:   func(c Card) Card { c.DateExpiration = "03/26"; return c },
			expected: nil,
		},
		{
			name:     "malformed expiry",
			mutate:   func(c Card) Card { c.DateExpiration = "3/26"; return c },
			expected: errExpirationInvalide,
		},
		{
			name:     "month out of range",
			mutate:   func(c Card) Card { c.DateExpiration = "13/27"; return c },
			expected: errExpirationInvalide,
		},
		{
			name:     "short cvv",
			mutate:   func(c Card) Card { c.CVV = "12"; return c },
			expected: errCVVInvalide,
		},
		{
			name:     "non-numeric cvv",
			mutate:   func(c Card) Card { c.CVV = "12a"; return c },
			expected: errCVVInvalide,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCard(tc.mutate(valid), now)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateDone.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateCollectingAddress.Terminal())
	assert.False(t, StateAuthorizingPayment.Terminal())
}
