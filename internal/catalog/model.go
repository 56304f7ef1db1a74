package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	CategorieHomme = "homme"
	CategorieFemme = "femme"
	CategorieMixte = "mixte"
)

// Amount is a price field as the upstream API delivers it: a JSON number,
// a numeric string, or garbage. Anything unparseable decodes to 0 so that
// totals never come out NaN or negative.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = clampAmount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = clampAmount(f)
		return nil
	}

	*a = 0
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

func clampAmount(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(f)
}

// Flag decodes the upstream has_active_promotion field, which shows up as
// true/false, 1/0 or "1"/"0" depending on the endpoint.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = n == 1
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Flag(s == "1" || strings.EqualFold(s, "true"))
		return nil
	}

	*f = false
	return nil
}

type Parfum struct {
	ID                 int64  `json:"id"`
	Nom                string `json:"nom"`
	Marque             string `json:"marque"`
	Categorie          string `json:"categorie"`
	Prix               Amount `json:"prix"`
	Stock              int    `json:"stock"`
	ImageURL           string `json:"image_url"`
	Description        string `json:"description,omitempty"`
	HasActivePromotion Flag   `json:"has_active_promotion"`
	DiscountPercentage Amount `json:"discount_percentage"`
	PrixFinal          Amount `json:"prix_final"`
}

// FinalPrice is the price a promoted parfum sells at: the server-computed
// prix_final wins, otherwise the discount is applied locally.
func (p Parfum) FinalPrice() float64 {
	if p.PrixFinal > 0 {
		return p.PrixFinal.Float64()
	}
	if bool(p.HasActivePromotion) && p.DiscountPercentage > 0 {
		return p.Prix.Float64() * (1 - p.DiscountPercentage.Float64()/100)
	}
	return p.Prix.Float64()
}

// SearchEntry is one saved search term of a user's history.
type SearchEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Terme     string `json:"terme_recherche"`
	CreatedAt string `json:"created_at,omitempty"`
}
