package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/admin"
	"megapos_terminal/internal/config"
	"megapos_terminal/internal/database"
	"megapos_terminal/internal/middleware"
	"megapos_terminal/internal/upstream"
	"megapos_terminal/internal/utils"
)

// adminError funnel les échecs de la console vers un message visible. Pas de
// retry automatique : l'opérateur relance lui-même.
func adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, admin.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, upstream.ErrUnreachable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backend injoignable — vérifiez qu'il est bien lancé"})
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return id, true
}

// --- Configuration du poste ---

// 🟢 POST /api/admin/device
// Enregistre l'adresse MAC du poste. C'est le seul "setup" de la console :
// si elle figure dans la liste blanche, la caisse expose l'administration.
func SetDeviceMAC(c *gin.Context) {
	var input struct {
		MAC string `json:"mac"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !utils.IsValidMAC(input.MAC) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse MAC invalide"})
		return
	}

	mac := utils.NormalizeMAC(input.MAC)
	if err := database.Redis.Set(c.Request.Context(), middleware.DeviceMACKey, mac, 0).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement du poste"})
		return
	}

	isAdmin := utils.IsAdminMAC(mac, config.AdminMACs())
	log.Printf("✅ Poste enregistré: %s (admin: %v)", mac, isAdmin)
	c.JSON(http.StatusOK, gin.H{"mac": mac, "admin": isAdmin})
}

// 🟢 GET /api/admin/device
func GetDeviceMAC(c *gin.Context) {
	mac, err := database.Redis.Get(c.Request.Context(), middleware.DeviceMACKey).Result()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"mac": "", "admin": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mac": mac, "admin": utils.IsAdminMAC(mac, config.AdminMACs())})
}

// --- Produits ---

// 🟢 GET /api/admin/products
func AdminListProducts(c *gin.Context) {
	if err := console.LoadProducts(c.Request.Context()); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Products())
}

// 🟢 POST /api/admin/products — création, PUT /api/admin/products/:id — mise à jour
func AdminSaveProduct(c *gin.Context) {
	id := 0
	if c.Param("id") != "" {
		var ok bool
		if id, ok = pathID(c); !ok {
			return
		}
	}

	var form admin.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := console.SaveProduct(c.Request.Context(), id, form); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Products())
}

// 🟢 DELETE /api/admin/products/:id?confirmed=true
func AdminDeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirmed") == "true"
	if err := console.DeleteProduct(c.Request.Context(), id, confirmed); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Products())
}

// 🟢 PATCH /api/admin/products/:id/stock
func AdminUpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if err := console.UpdateProductStock(c.Request.Context(), id, input.Quantity); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Products())
}

// --- Catégories ---

// 🟢 GET /api/admin/categories
func AdminListCategories(c *gin.Context) {
	if err := console.LoadCategories(c.Request.Context()); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Categories())
}

// 🟢 POST /api/admin/categories, PUT /api/admin/categories/:id
func AdminSaveCategory(c *gin.Context) {
	id := 0
	if c.Param("id") != "" {
		var ok bool
		if id, ok = pathID(c); !ok {
			return
		}
	}

	var form admin.CategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := console.SaveCategory(c.Request.Context(), id, form); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Categories())
}

// 🟢 DELETE /api/admin/categories/:id?confirmed=true
func AdminDeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirmed") == "true"
	if err := console.DeleteCategory(c.Request.Context(), id, confirmed); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Categories())
}

// --- Commandes ---

// 🟢 GET /api/admin/orders
func AdminListOrders(c *gin.Context) {
	if err := console.LoadOrders(c.Request.Context()); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Orders())
}

// 🟢 PATCH /api/admin/orders/:id/status
func AdminUpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if err := console.UpdateOrderStatus(c.Request.Context(), id, input.Status); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Orders())
}

// --- Utilisateurs ---

// 🟢 GET /api/admin/users
func AdminListUsers(c *gin.Context) {
	if err := console.LoadUsers(c.Request.Context()); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Users())
}

// 🟢 POST /api/admin/users, PUT /api/admin/users/:id
func AdminSaveUser(c *gin.Context) {
	id := 0
	if c.Param("id") != "" {
		var ok bool
		if id, ok = pathID(c); !ok {
			return
		}
	}

	var form admin.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := console.SaveUser(c.Request.Context(), id, form); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Users())
}

// 🟢 DELETE /api/admin/users/:id?confirmed=true
func AdminDeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirmed") == "true"
	if err := console.DeleteUser(c.Request.Context(), id, confirmed); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, console.Users())
}
