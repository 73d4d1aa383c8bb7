package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/upstream"
)

// 🟢 GET /api/catalog?search=...&category=...
func GetCatalog(c *gin.Context) {
	term := c.Query("search")
	category := c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"products":   store.Filter(term, category),
		"categories": store.Categories(),
	})
}

// 🟢 GET /api/catalog/:id
func GetCatalogProduct(c *gin.Context) {
	product, ok := store.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// 🟢 POST /api/catalog/refresh
// Rechargement en bloc depuis le backend. En cas d'échec, le catalogue
// courant reste affiché tel quel.
func RefreshCatalog(c *gin.Context) {
	if err := store.Refresh(c.Request.Context()); err != nil {
		log.Printf("⚠️  Rafraîchissement catalogue échoué: %v", err)
		if errors.Is(err, upstream.ErrUnreachable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend injoignable — vérifiez qu'il est bien lancé"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Printf("✅ Catalogue rafraîchi: %d produits", len(store.Products()))
	c.JSON(http.StatusOK, gin.H{
		"products":   store.Products(),
		"categories": store.Categories(),
	})
}
