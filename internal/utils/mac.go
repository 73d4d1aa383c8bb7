package utils

import (
	"regexp"
	"strings"
)

// Le drapeau d'administration d'un poste est son adresse MAC, saisie une fois
// à l'installation. Deux graphies circulent (séparateur ":" ou "-", casse
// libre) : tout est ramené à la forme canonique XX-XX-XX-XX-XX-XX majuscule
// avant stockage et comparaison.

var macPattern = regexp.MustCompile(`^([0-9A-F]{2}-){5}[0-9A-F]{2}$`)

// NormalizeMAC canonise une adresse MAC saisie par l'opérateur.
func NormalizeMAC(raw string) string {
	mac := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(mac, ":", "-")
}

// IsValidMAC vérifie la forme canonique après normalisation.
func IsValidMAC(raw string) bool {
	return macPattern.MatchString(NormalizeMAC(raw))
}

// IsAdminMAC compare l'adresse du poste à la liste blanche configurée.
func IsAdminMAC(raw string, allowed []string) bool {
	mac := NormalizeMAC(raw)
	for _, a := range allowed {
		if mac == NormalizeMAC(a) {
			return true
		}
	}
	return false
}
