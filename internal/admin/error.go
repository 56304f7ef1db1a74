package admin

import "errors"

var (
	errParfumRequis       = errors.New("parfum requis")
	errRemiseInvalide     = errors.New("la remise doit etre comprise entre 1% et 90%")
	errDateFormat         = errors.New("format de date invalide (AAAA-MM-JJ)")
	errDatesIncoherentes  = errors.New("la date de fin doit etre strictement posterieure a la date de debut")
	errStatutInconnu      = errors.New("statut inconnu")
	errTransitionInvalide = errors.New("transition de statut non autorisee")
)
