package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/checkout"
	"megapos_terminal/internal/locations"
	"megapos_terminal/internal/models"
	"megapos_terminal/internal/upstream"
	"megapos_terminal/internal/utils"
)

// 🟢 GET /api/checkout
func GetCheckoutState(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	c.JSON(http.StatusOK, terminalState())
}

// 🟢 POST /api/checkout/begin
// Démarre l'encaissement avec la méthode de paiement choisie. Fige
// l'instantané du panier : les montants n'évoluent plus.
func BeginCheckout(c *gin.Context) {
	var input struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	method := models.PaymentMethod(input.PaymentMethod)
	if method != models.PaymentCash && method != models.PaymentTransfer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Méthode de paiement inconnue"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Workflow.Begin(method); err != nil {
		status := http.StatusConflict
		if errors.Is(err, checkout.ErrCartEmpty) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	broadcastState()

	c.JSON(http.StatusOK, terminalState())
}

// 🟢 GET /api/checkout/qr
// Image QR du virement simulé, en data URI, avec la référence à rappeler.
func GetTransferQR(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Workflow.State() != checkout.StateTransferScan {
		c.JSON(http.StatusConflict, gin.H{"error": "Aucun virement en attente de scan"})
		return
	}

	uri, err := checkout.TransferQRDataURI(session.Workflow.Total())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"qr":        uri,
		"payload":   session.Workflow.QRPayload(),
		"reference": session.Workflow.PaymentReference(),
		"total":     session.Workflow.Total(),
	})
}

// 🟢 POST /api/checkout/confirm-transfer
// Bouton "j'ai payé" : aucune vérification réelle, c'est assumé.
func ConfirmTransfer(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Workflow.ConfirmTransfer(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	broadcastState()

	c.JSON(http.StatusOK, terminalState())
}

// 🟢 GET /api/checkout/delivery
// Formulaire courant + options sélectionnables à chaque niveau.
func GetDeliveryForm(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	form := session.Workflow.DeliveryForm()
	c.JSON(http.StatusOK, gin.H{
		"delivery":  form.Info(),
		"cities":    locations.Cities(),
		"districts": form.DistrictOptions(),
		"wards":     form.WardOptions(),
	})
}

// 🟢 PUT /api/checkout/delivery
// Reporte la saisie du formulaire de livraison. Les champs hiérarchiques sont
// appliqués dans l'ordre ville → district → quartier pour que les cascades de
// réinitialisation jouent.
func UpdateDeliveryForm(c *gin.Context) {
	var input models.DeliveryInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	form := session.Workflow.DeliveryForm()
	form.Apply(input)

	c.JSON(http.StatusOK, gin.H{
		"delivery":  form.Info(),
		"districts": form.DistrictOptions(),
		"wards":     form.WardOptions(),
	})
}

// 🟢 POST /api/checkout/confirm
// Choix du retrait et soumission. Pour la livraison, toutes les erreurs de
// formulaire sont rendues ensemble ; tant qu'il y en a, rien n'est soumis.
func ConfirmFulfillment(c *gin.Context) {
	var input struct {
		FulfillmentMethod string `json:"fulfillmentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	method := models.FulfillmentMethod(input.FulfillmentMethod)
	if method != models.FulfillmentPickup && method != models.FulfillmentDelivery {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode de retrait inconnu"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	delivery := session.Workflow.DeliveryForm().Info()
	ack, fieldErrs, err := session.Workflow.ConfirmFulfillment(c.Request.Context(), session.User.UserID, method)
	if err != nil {
		broadcastState()
		if errors.Is(err, checkout.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, upstream.ErrUnreachable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend injoignable — vérifiez qu'il est bien lancé"})
			return
		}
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": fieldErrs})
		return
	}

	log.Printf("✅ Commande %s confirmée (%d articles, total %.0f)", ack.Order.OrderNumber, ack.Items, ack.Total)

	// Confirmation par e-mail si le client en a laissé un. Best-effort : la
	// commande est déjà confirmée côté backend.
	if method == models.FulfillmentDelivery && delivery.Email != "" {
		go func(to string, order models.Order, info models.DeliveryInfo) {
			if err := utils.SendDeliveryConfirmationEmail(to, order, info); err != nil {
				log.Printf("⚠️  E-mail de confirmation non envoyé: %v", err)
			}
		}(delivery.Email, ack.Order, delivery)
	}

	broadcastState()
	c.JSON(http.StatusOK, gin.H{"ack": ack, "state": session.Workflow.State()})
}

// 🟢 POST /api/checkout/cancel
// "Plus tard" / fermeture de modale : l'instantané est jeté, le panier reste.
func CancelCheckout(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.Workflow.Cancel(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "La soumission est en cours, impossible d'annuler"})
		return
	}
	broadcastState()

	c.JSON(http.StatusOK, terminalState())
}

// 🟢 GET /api/checkout/result
// Dernier accusé de succès, pour l'écran de félicitations.
func GetCheckoutResult(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	ack := session.Workflow.LastResult()
	if ack == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun encaissement terminé"})
		return
	}
	c.JSON(http.StatusOK, ack)
}
