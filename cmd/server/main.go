package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/admin"
	"megapos_terminal/internal/catalog"
	"megapos_terminal/internal/config"
	"megapos_terminal/internal/database"
	"megapos_terminal/internal/handlers"
	"megapos_terminal/internal/routes"
	"megapos_terminal/internal/upstream"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	api := upstream.New(config.UpstreamBaseURL())
	log.Println("✅ Client backend initialisé:", config.UpstreamBaseURL())

	store := catalog.New(api, database.Redis)
	warmupCatalog(store)

	console := admin.NewConsole(api)

	handlers.Init(api, store, console, config.DeliveryEmailSuffix())

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Terminal MegaPOS lancé sur le port", port)
	r.Run(":" + port)
}

// warmupCatalog affiche le dernier instantané Redis en attendant le backend,
// puis tente un premier rafraîchissement. La caisse démarre même backend
// éteint.
func warmupCatalog(store *catalog.Catalog) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if store.WarmStart(ctx) {
		log.Printf("✅ Catalogue restauré depuis le cache (%d produits)", len(store.Products()))
	}
	if err := store.Refresh(ctx); err != nil {
		log.Printf("⚠️  Premier rafraîchissement catalogue échoué: %v", err)
		return
	}
	log.Printf("✅ Catalogue chargé: %d produits", len(store.Products()))
}
