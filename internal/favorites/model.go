package favorites

import "github.com/example/parfumgate/internal/catalog"

const (
	PrioriteBasse   = "basse"
	PrioriteMoyenne = "moyenne"
	PrioriteHaute   = "haute"
)

// WishlistEntry is a saved parfum plus the personal annotations the
// wishlist carries on top of a plain favorite.
type WishlistEntry struct {
	catalog.Parfum
	NotePersonnelle string `json:"note_personnelle,omitempty"`
	Priorite        string `json:"priorite,omitempty"`
}
