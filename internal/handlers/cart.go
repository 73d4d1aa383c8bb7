package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"items": session.Cart.Items(),
		"total": session.Cart.TotalAmount(),
		"count": session.Cart.TotalItems(),
	})
}

// 🟢 POST /api/cart/add
// Ajoute une unité du produit. Silencieux au plafond du stock : la caisse
// n'affiche pas d'erreur, le compteur ne bouge juste pas.
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, ok := store.Find(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.Cart.Add(product)
	broadcastState()

	c.JSON(http.StatusOK, gin.H{
		"items": session.Cart.Items(),
		"total": session.Cart.TotalAmount(),
		"count": session.Cart.TotalItems(),
	})
}

// 🟢 PUT /api/cart/:productId
// Applique un delta (+1/-1 des boutons de la caisse), borné entre 1 et le
// stock courant. Descendre à zéro ne supprime pas la ligne : c'est un no-op,
// la suppression est une action explicite.
func UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.Cart.UpdateQuantity(c.Param("productId"), input.Delta)
	broadcastState()

	c.JSON(http.StatusOK, gin.H{
		"items": session.Cart.Items(),
		"total": session.Cart.TotalAmount(),
		"count": session.Cart.TotalItems(),
	})
}

// 🟢 DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.Cart.Remove(c.Param("productId"))
	broadcastState()

	c.JSON(http.StatusOK, gin.H{
		"items": session.Cart.Items(),
		"total": session.Cart.TotalAmount(),
		"count": session.Cart.TotalItems(),
	})
}

// 🟢 DELETE /api/cart
func ClearCart(c *gin.Context) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.Cart.Clear()
	broadcastState()

	c.JSON(http.StatusOK, gin.H{"items": session.Cart.Items(), "total": 0, "count": 0})
}
