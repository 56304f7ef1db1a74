package cart

import "github.com/example/parfumgate/internal/catalog"

// Line is one cart entry as the upstream panier endpoint returns it:
// the parfum joined with the quantity and the unit price snapshot taken
// at add-time.
type Line struct {
	PanierID     int64          `json:"panier_id"`
	ParfumID     int64          `json:"parfum_id"`
	Nom          string         `json:"nom"`
	Marque       string         `json:"marque"`
	ImageURL     string         `json:"image_url"`
	Quantite     int            `json:"quantite"`
	PrixUnitaire catalog.Amount `json:"prix_unitaire"`
	PrixOriginal catalog.Amount `json:"prix_original"`
	Prix         catalog.Amount `json:"prix"`
}

// UnitPrice picks the price a line counts at: the add-time snapshot wins
// (it carries the promotional price), then the original product price,
// then the live price. Missing or unusable fields count as 0.
func (l Line) UnitPrice() float64 {
	for _, candidate := range []catalog.Amount{l.PrixUnitaire, l.PrixOriginal, l.Prix} {
		if candidate > 0 {
			return candidate.Float64()
		}
	}
	return 0
}

// ComputeTotal sums quantite times unit price over the lines. The result
// is never NaN and never negative, whatever the upstream payload held.
func ComputeTotal(lines []Line) float64 {
	total := 0.0
	for _, line := range lines {
		if line.Quantite <= 0 {
			continue
		}
		total += float64(line.Quantite) * line.UnitPrice()
	}
	return total
}

// Summary is what the cart screen renders: the lines plus the running total.
type Summary struct {
	Items []Line  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
