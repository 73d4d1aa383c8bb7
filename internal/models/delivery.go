package models

// DeliveryInfo porte les informations de livraison saisies au checkout.
// City/District/Ward forment une hiérarchie dépendante à trois niveaux :
// changer la ville réinitialise district et quartier, changer le district
// réinitialise le quartier.
type DeliveryInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Ward     string `json:"ward"`
}
