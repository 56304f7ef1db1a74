package checkout

import (
	"strings"
	"time"
	"unicode"
)

// State of a checkout session. A session only ever moves forward except
// for the declined-payment loop back to card collection; cancellation
// discards the session from any non-terminal state.
type State string

const (
	StateCollectingAddress  State = "collecting_address"
	StateChoosingPayment    State = "choosing_payment"
	StateCollectingCard     State = "collecting_card"
	StateAuthorizingPayment State = "authorizing_payment"
	StateSubmittingOrder    State = "submitting_order"
	StateDone               State = "done"
	StateFailed             State = "failed"
)

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

type Address struct {
	Nom        string `json:"nom"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	Ville      string `json:"ville"`
	CodePostal string `json:"code_postal"`
}

// Card holds the card details for the online branch. They are validated,
// handed to the gateway, and never stored on the session.
type Card struct {
	Numero         string `json:"numero_carte"`
	NomTitulaire   string `json:"nom_titulaire"`
	DateExpiration string `json:"date_expiration"`
	CVV            string `json:"cvv"`
}

type Session struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"user_id"`
	State          State     `json:"state"`
	Address        Address   `json:"adresse"`
	ModePaiement   string    `json:"mode_paiement,omitempty"`
	Total          float64   `json:"total"`
	ItemsCount     int       `json:"items_count"`
	TransactionID  string    `json:"transaction_id,omitempty"`
	PaiementValide bool      `json:"paiement_valide,omitempty"`
	FailureMessage string    `json:"failure_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func validateAddress(a Address) error {
	if strings.TrimSpace(a.Nom) == "" {
		return errNomRequis
	}
	if digitCount(a.Telephone) < 10 {
		return errTelephoneInvalide
	}
	if strings.TrimSpace(a.Adresse) == "" {
		return errAdresseRequise
	}
	if strings.TrimSpace(a.Ville) == "" {
		return errVilleRequise
	}
	return nil
}

// validateCard applies the format checks of the card form: 16 digits
// once display spacing is stripped, a holder name, an MM/YY expiry not
// in the past (month granularity) and a 3-digit CVV.
func validateCard(c Card, now time.Time) error {
	numero := strings.ReplaceAll(c.Numero, " ", "")
	if len(numero) != 16 || !allDigits(numero) {
		return errCarteInvalide
	}

	if len(strings.TrimSpace(c.NomTitulaire)) < 2 {
		return errTitulaireRequis
	}

	month, year, ok := parseExpiration(c.DateExpiration)
	if !ok {
		return errExpirationInvalide
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return errCarteExpiree
	}

	if len(c.CVV) != 3 || !allDigits(c.CVV) {
		return errCVVInvalide
	}

	return nil
}

// parseExpiration reads an MM/YY expiry; YY is 2000-based.
func parseExpiration(raw string) (month, year int, ok bool) {
	if len(raw) != 5 || raw[2] != '/' {
		return 0, 0, false
	}

	mm, yy := raw[:2], raw[3:]
	if !allDigits(mm) || !allDigits(yy) {
		return 0, 0, false
	}

	month = int(mm[0]-'0')*10 + int(mm[1]-'0')
	if month < 1 || month > 12 {
		return 0, 0, false
	}

	year = 2000 + int(yy[0]-'0')*10 + int(yy[1]-'0')
	return month, year, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
