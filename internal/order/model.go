package order

import "github.com/example/parfumgate/internal/catalog"

// Statuses as the upstream API stores them. Only the server moves an
// order forward; the client may only cancel a freshly confirmed one.
const (
	StatutConfirmee = "confirmee"
	StatutEnCours   = "en_cours"
	StatutLivree    = "livree"
	StatutAnnulee   = "annulee"
)

const (
	ModeLivraison = "livraison"
	ModeEnLigne   = "enligne"
)

func IsTerminal(statut string) bool {
	return statut == StatutLivree || statut == StatutAnnulee
}

// CanCancel is the client-permitted slice of the transition table:
// cancellation is allowed from confirmee and nowhere else.
func CanCancel(statut string) bool {
	return statut == StatutConfirmee
}

type Order struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id"`
	Nom          string         `json:"nom"`
	Telephone    string         `json:"telephone"`
	Adresse      string         `json:"adresse"`
	Ville        string         `json:"ville"`
	CodePostal   string         `json:"code_postal,omitempty"`
	ModePaiement string         `json:"mode_paiement"`
	Statut       string         `json:"statut"`
	Total        catalog.Amount `json:"total"`
	ItemsCount   int            `json:"items_count,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
}

type OrderItem struct {
	ParfumID     int64          `json:"parfum_id"`
	Nom          string         `json:"nom"`
	Marque       string         `json:"marque"`
	Quantite     int            `json:"quantite"`
	PrixUnitaire catalog.Amount `json:"prix_unitaire"`
}

type OrderDetails struct {
	Order
	Items []OrderItem `json:"items"`
}

// CreateOrderRequest is the /achat payload. Card data never appears here:
// for cash on delivery the payment fields stay zero, for online payment
// only the gateway outcome (transaction id + validated flag) is attached.
type CreateOrderRequest struct {
	UserID         int64  `json:"user_id"`
	Nom            string `json:"nom"`
	Telephone      string `json:"telephone"`
	Adresse        string `json:"adresse"`
	Ville          string `json:"ville"`
	CodePostal     string `json:"code_postal,omitempty"`
	ModePaiement   string `json:"mode_paiement"`
	PaiementValide bool   `json:"paiement_valide,omitempty"`
	TransactionID  string `json:"transaction_id,omitempty"`
}

// ParfumAvis is one row of the review pre-check: a parfum of a delivered
// order together with the review already left for it, if any.
type ParfumAvis struct {
	ParfumID    int64  `json:"parfum_id"`
	Nom         string `json:"nom"`
	Marque      string `json:"marque"`
	ImageURL    string `json:"image_url"`
	AvisID      *int64 `json:"avis_id"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}

// Reviewed reports whether a review already exists for this parfum on
// this order; such rows render read-only.
func (p ParfumAvis) Reviewed() bool {
	return p.AvisID != nil || p.Note > 0
}

type Avis struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ParfumID    int64  `json:"parfum_id"`
	CommandeID  int64  `json:"commande_id"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type NoteMoyenne struct {
	Moyenne float64 `json:"moyenne"`
	Nombre  int     `json:"nombre_avis"`
}
