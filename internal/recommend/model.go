package recommend

import "github.com/example/parfumgate/internal/catalog"

// Combined is the merged recommendation set the tabbed view renders.
// JSON keys follow the tab identifiers the UI already uses.
type Combined struct {
	ByHistory   []catalog.Parfum `json:"byHistory"`
	ByFavorites []catalog.Parfum `json:"byFavorites"`
	Trending    []catalog.Parfum `json:"trending"`
	Promotions  []catalog.Parfum `json:"promotions"`
	NewParfums  []catalog.Parfum `json:"newParfums"`
}
