package checkout

import "errors"

var (
	errPanierVide         = errors.New("votre panier est vide, ajoutez des produits avant de commander")
	errSessionIntrouvable = errors.New("session de commande introuvable")
	errEtatInvalide       = errors.New("cette etape n'est pas disponible dans l'etat actuel de la commande")

	errNomRequis         = errors.New("le nom complet est obligatoire")
	errTelephoneInvalide = errors.New("numero de telephone invalide")
	errAdresseRequise    = errors.New("l'adresse est obligatoire")
	errVilleRequise      = errors.New("la ville est obligatoire")

	errModePaiementInvalide = errors.New("mode de paiement invalide")

	errCarteInvalide      = errors.New("numero de carte invalide (16 chiffres requis)")
	errTitulaireRequis    = errors.New("nom du titulaire requis")
	errExpirationInvalide = errors.New("date d'expiration invalide (MM/AA)")
	errCarteExpiree       = errors.New("carte expiree")
	errCVVInvalide        = errors.New("cvv invalide (3 chiffres requis)")

	errPaiementRefuse = errors.New("paiement refuse par la banque")
)
