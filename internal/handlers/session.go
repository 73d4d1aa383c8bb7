// Package handlers expose le terminal à l'UI : session, catalogue, panier,
// encaissement, historique et console d'administration. Une seule session
// opérateur à la fois — le mutex de Session sérialise tous les accès au panier
// et à la machine d'encaissement.
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"megapos_terminal/internal/admin"
	"megapos_terminal/internal/cart"
	"megapos_terminal/internal/catalog"
	"megapos_terminal/internal/checkout"
	"megapos_terminal/internal/database"
	"megapos_terminal/internal/models"
	"megapos_terminal/internal/upstream"
)

// Canal Redis du flux d'état vers l'afficheur client.
const terminalStateChannel = "terminal:state"

type Session struct {
	mu       sync.Mutex
	User     models.UserAccount
	Cart     *cart.Cart
	Workflow *checkout.Workflow
}

var (
	api     *upstream.Client
	store   *catalog.Catalog
	console *admin.Console
	session *Session
)

// Init câble les handlers sur leurs dépendances. À appeler une fois au
// démarrage, avant l'enregistrement des routes.
func Init(client *upstream.Client, cat *catalog.Catalog, adminConsole *admin.Console, emailSuffix string) {
	api = client
	store = cat
	console = adminConsole

	c := cart.New()
	session = &Session{
		User:     models.GuestUser(),
		Cart:     c,
		Workflow: checkout.NewWorkflow(c, client, cat, checkout.WithEmailSuffix(emailSuffix)),
	}
}

// terminalState est l'instantané poussé vers l'afficheur client et renvoyé
// par les endpoints de lecture.
func terminalState() map[string]any {
	w := session.Workflow
	return map[string]any{
		"user":          session.User,
		"items":         session.Cart.Items(),
		"total":         session.Cart.TotalAmount(),
		"count":         session.Cart.TotalItems(),
		"checkoutState": w.State(),
		"paymentMethod": w.PaymentMethod(),
		"fieldErrors":   w.ValidationErrors(),
	}
}

// broadcastState publie l'état courant sur Redis ; les connexions WebSocket
// abonnées le relaient à l'afficheur. Best-effort.
func broadcastState() {
	payload, err := json.Marshal(terminalState())
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), terminalStateChannel, payload).Err(); err != nil {
		log.Printf("⚠️  Diffusion état terminal impossible: %v", err)
	}
}
