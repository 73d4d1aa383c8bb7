package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/upstream"
	"megapos_terminal/internal/utils"
)

// 🟢 GET /api/orders/me
// Historique du client connecté. Les invités n'en ont jamais.
func GetMyOrders(c *gin.Context) {
	session.mu.Lock()
	user := session.User
	session.mu.Unlock()

	if user.IsGuest() {
		c.JSON(http.StatusOK, gin.H{"orders": []any{}})
		return
	}

	orders, err := api.ListUserOrders(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, upstream.ErrUnreachable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend injoignable — vérifiez qu'il est bien lancé"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// 🟢 GET /api/orders/:id/receipt
// Imprime la page reçu du front en PDF via Chrome headless.
func GetOrderReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	pdf, err := utils.RenderReceiptPDF(utils.GetFrontendReceiptBaseURL(), id)
	if err != nil {
		log.Printf("⚠️  Rendu du reçu PDF échoué: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du reçu"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recu-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
