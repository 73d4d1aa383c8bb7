package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/config"
	"megapos_terminal/internal/database"
	"megapos_terminal/internal/utils"
)

// Clé Redis portant l'adresse MAC enregistrée pour ce poste.
const DeviceMACKey = "device_mac"

// RequireAdmin n'est pas une authentification : c'est un interrupteur de
// commodité par poste. L'adresse MAC enregistrée à l'installation décide si la
// caisse expose la console d'administration. Aucun compte, aucun mot de passe.
func RequireAdmin(c *gin.Context) {
	mac, err := database.Redis.Get(c.Request.Context(), DeviceMACKey).Result()
	if err != nil || !utils.IsAdminMAC(mac, config.AdminMACs()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ce poste n'est pas configuré comme poste d'administration"})
		c.Abort()
		return
	}
	c.Next()
}
