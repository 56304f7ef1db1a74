package cart

import "errors"

var (
	errQuantiteInvalide = errors.New("la quantite doit etre d'au moins 1")
	errParfumRequis     = errors.New("parfum invalide")
)
