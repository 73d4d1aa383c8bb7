package checkout

import (
	"regexp"
	"strings"

	"megapos_terminal/internal/locations"
	"megapos_terminal/internal/models"
)

// DefaultEmailSuffix est le suffixe exigé pour l'email de livraison optionnel.
const DefaultEmailSuffix = "@gmail.com"

const phoneMaxLen = 10

var (
	nonDigits = regexp.MustCompile(`\D`)
	tenDigits = regexp.MustCompile(`^\d{10}$`)
)

// NormalizePhone retire tout sauf les chiffres et tronque à 10. Appliqué à la
// saisie, pas seulement à la validation.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > phoneMaxLen {
		digits = digits[:phoneMaxLen]
	}
	return digits
}

// ValidateDeliveryInfo collecte toutes les erreurs champ → message d'un coup,
// sans s'arrêter à la première.
func ValidateDeliveryInfo(info models.DeliveryInfo, emailSuffix string) map[string]string {
	if emailSuffix == "" {
		emailSuffix = DefaultEmailSuffix
	}
	errors := map[string]string{}

	if info.FullName == "" {
		errors["fullName"] = "Veuillez saisir le nom complet"
	}
	if info.Phone == "" {
		errors["phone"] = "Veuillez saisir le numéro de téléphone"
	} else if !tenDigits.MatchString(info.Phone) {
		errors["phone"] = "Le numéro de téléphone doit comporter exactement 10 chiffres"
	}
	if info.City == "" {
		errors["city"] = "Veuillez choisir la ville"
	}
	if info.District == "" {
		errors["district"] = "Veuillez choisir le district"
	}
	if info.Ward == "" {
		errors["ward"] = "Veuillez choisir le quartier"
	}
	if info.Address == "" {
		errors["address"] = "Veuillez saisir l'adresse"
	}
	if info.Email != "" && !strings.HasSuffix(info.Email, emailSuffix) {
		errors["email"] = "L'email de livraison doit se terminer par " + emailSuffix
	}

	// Cohérence de la hiérarchie quand les trois niveaux sont renseignés.
	if info.City != "" && info.District != "" && info.Ward != "" &&
		!locations.Valid(info.City, info.District, info.Ward) {
		errors["ward"] = "Le quartier ne correspond pas au district choisi"
	}

	return errors
}

// DeliveryForm est l'état transitoire du formulaire de livraison. Les champs
// dépendants sont réinitialisés en cascade : changer la ville efface district
// et quartier, changer le district efface le quartier. Un enfant n'est jamais
// accepté sans son parent.
type DeliveryForm struct {
	info models.DeliveryInfo
}

func NewDeliveryForm() *DeliveryForm {
	return &DeliveryForm{info: models.DeliveryInfo{City: locations.DefaultCity()}}
}

func (f *DeliveryForm) Info() models.DeliveryInfo { return f.info }

func (f *DeliveryForm) SetFullName(name string) { f.info.FullName = name }
func (f *DeliveryForm) SetAddress(addr string)  { f.info.Address = addr }
func (f *DeliveryForm) SetEmail(email string)   { f.info.Email = email }

func (f *DeliveryForm) SetPhone(raw string) {
	f.info.Phone = NormalizePhone(raw)
}

func (f *DeliveryForm) SetCity(city string) {
	if city == f.info.City {
		return
	}
	f.info.City = city
	f.info.District = ""
	f.info.Ward = ""
}

func (f *DeliveryForm) SetDistrict(district string) {
	if district == f.info.District {
		return
	}
	if district != "" && !contains(locations.Districts(f.info.City), district) {
		return
	}
	f.info.District = district
	f.info.Ward = ""
}

func (f *DeliveryForm) SetWard(ward string) {
	if ward != "" && !contains(locations.Wards(f.info.City, f.info.District), ward) {
		return
	}
	f.info.Ward = ward
}

// DistrictOptions liste les districts sélectionnables pour la ville courante.
func (f *DeliveryForm) DistrictOptions() []string {
	return locations.Districts(f.info.City)
}

// WardOptions est vide tant qu'aucun district n'est choisi.
func (f *DeliveryForm) WardOptions() []string {
	if f.info.District == "" {
		return nil
	}
	return locations.Wards(f.info.City, f.info.District)
}

// Apply reporte une saisie complète sur le formulaire, hiérarchie d'abord
// pour que les cascades de réinitialisation s'appliquent.
func (f *DeliveryForm) Apply(info models.DeliveryInfo) {
	f.SetCity(info.City)
	f.SetDistrict(info.District)
	f.SetWard(info.Ward)
	f.SetFullName(info.FullName)
	f.SetPhone(info.Phone)
	f.SetEmail(info.Email)
	f.SetAddress(info.Address)
}

func (f *DeliveryForm) Reset() {
	f.info = models.DeliveryInfo{City: locations.DefaultCity()}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
