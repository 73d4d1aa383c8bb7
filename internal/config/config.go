package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UpstreamBaseURL pointe le backend e-commerce que le terminal consomme.
func UpstreamBaseURL() string {
	return getEnv("UPSTREAM_BASE_URL", "http://localhost:5000")
}

func Port() string {
	return getEnv("PORT", "8080")
}

// FrontendURL sert aux redirections et au rendu du reçu PDF.
func FrontendURL() string {
	return getEnv("FRONTEND_URL", "http://localhost:3000")
}

// AdminMACs liste les adresses MAC des postes autorisés à ouvrir la console
// d'administration, séparées par des virgules. Le poste de démonstration reste
// le défaut.
func AdminMACs() []string {
	raw := getEnv("ADMIN_MACS", "D4-54-8B-89-FA-35")
	parts := strings.Split(raw, ",")
	macs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			macs = append(macs, p)
		}
	}
	return macs
}

// DeliveryEmailSuffix est le suffixe exigé pour l'email optionnel du
// formulaire de livraison.
func DeliveryEmailSuffix() string {
	return getEnv("DELIVERY_EMAIL_SUFFIX", "@gmail.com")
}

// JWTSecret signe les jetons de session de la caisse. Le défaut n'a rien
// d'un secret : la session n'est pas une barrière de sécurité ici.
func JWTSecret() string {
	return getEnv("JWT_SECRET", "super_secret")
}
