package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"megapos_terminal/internal/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Afficheur client sur le réseau local du magasin
		return true
	},
}

// TerminalWebSocket alimente l'afficheur côté client : chaque mutation du
// panier ou de l'encaissement publie l'état sur Redis, relayé ici.
func TerminalWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, terminalStateChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	// État initial à la connexion
	session.mu.Lock()
	initial := terminalState()
	session.mu.Unlock()
	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
