package order

import "errors"

var (
	errCannotCancel        = errors.New("cette commande ne peut pas etre annulee car elle est deja en cours de livraison ou livree")
	errCommandeIntrouvable = errors.New("commande introuvable")

	errNoteRequise         = errors.New("veuillez donner une note")
	errNoteInvalide        = errors.New("la note doit etre comprise entre 1 et 5")
	errCommentaireTropLong = errors.New("commentaire trop long")
	errAvisDejaDepose      = errors.New("un avis existe deja pour ce parfum sur cette commande")
	errAvisNonEligible     = errors.New("seules les commandes livrees peuvent etre evaluees")
)
