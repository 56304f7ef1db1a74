package admin

import (
	"time"

	"github.com/example/parfumgate/internal/order"
)

const promotionDateLayout = "2006-01-02"

type Promotion struct {
	ID                 int64  `json:"id"`
	ParfumID           int64  `json:"parfum_id"`
	DiscountPercentage int    `json:"discount_percentage"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Description        string `json:"description,omitempty"`
	Active             bool   `json:"active"`
}

// ActiveAt derives the active flag: now falls within [start, end], the
// end date counting through its whole day.
func (p Promotion) ActiveAt(now time.Time) bool {
	start, err := time.Parse(promotionDateLayout, p.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(promotionDateLayout, p.EndDate)
	if err != nil {
		return false
	}
	return !now.Before(start) && now.Before(end.AddDate(0, 0, 1))
}

type CreatePromotionRequest struct {
	ParfumID           int64  `json:"parfum_id"`
	DiscountPercentage int    `json:"discount_percentage"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Description        string `json:"description,omitempty"`
}

type User struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type UserDetails struct {
	User
	Commandes []order.Order `json:"commandes"`
}

// Dashboard is the landing-page summary: entity counts plus revenue,
// the sum of all order totals.
type Dashboard struct {
	TotalParfums int     `json:"total_parfums"`
	TotalUsers   int     `json:"total_users"`
	TotalOrders  int     `json:"total_orders"`
	Revenue      float64 `json:"revenue"`
}

// OrderFilter assembles the order-listing query. Empty fields are left
// off the request; "all" means no status filter.
type OrderFilter struct {
	Statut   string
	DateFrom string
	DateTo   string
}

type ParfumInput struct {
	Nom         string  `json:"nom"`
	Marque      string  `json:"marque"`
	Categorie   string  `json:"categorie"`
	Prix        float64 `json:"prix"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
}
