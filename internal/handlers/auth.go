package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/models"
	"megapos_terminal/internal/upstream"
	"megapos_terminal/internal/utils"
)

type faceLoginInput struct {
	FaceDescriptor []float64 `json:"faceDescriptor"`
	ImageData      string    `json:"imageData"`
}

// 🟢 POST /api/auth/face-login
// La reconnaissance est déléguée au backend. Si celui-ci est injoignable, la
// caisse ne bloque pas : le scan n'est pas une barrière de sécurité.
func FaceLogin(c *gin.Context) {
	var input faceLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	user, err := api.FaceLogin(c.Request.Context(), input.FaceDescriptor, input.ImageData)
	if err != nil {
		if errors.Is(err, upstream.ErrUnreachable) {
			// Repli : premier compte de démonstration si la liste répond
			// encore, sinon erreur explicite.
			users, listErr := api.ListUsers(c.Request.Context())
			if listErr != nil || len(users) == 0 {
				log.Printf("⚠️  Backend injoignable pour le scan facial: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend injoignable — vérifiez qu'il est bien lancé"})
				return
			}
			user = users[0]
		} else {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Visage non reconnu"})
			return
		}
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du jeton"})
		return
	}

	session.User = user
	log.Printf("✅ Connexion par scan facial: %s (id=%d)", user.FullName, user.UserID)
	broadcastState()

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// 🟢 POST /api/auth/guest
// Le client invité porte l'identifiant 0 et n'a jamais d'historique.
func GuestLogin(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	user := models.GuestUser()
	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du jeton"})
		return
	}

	session.User = user
	broadcastState()

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// 🟢 POST /api/auth/logout
// Retour à l'écran d'accueil : session invité, panier vidé, encaissement
// abandonné sauf s'il est en cours de soumission.
func Logout(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Workflow.Cancel(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un encaissement est en cours de soumission"})
		return
	}
	session.Cart.Clear()
	session.User = models.GuestUser()
	broadcastState()

	c.JSON(http.StatusOK, gin.H{"message": "Session terminée"})
}
