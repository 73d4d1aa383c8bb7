package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/config"
	"megapos_terminal/internal/handlers"
	"megapos_terminal/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Authentification
	auth := r.Group("/api/auth")
	{
		auth.POST("/face-login", middleware.FaceLoginRateLimit(), handlers.FaceLogin)
		auth.POST("/guest", handlers.GuestLogin)
		auth.POST("/logout", handlers.Logout)
	}

	// Catalogue (lecture libre, la caisse n'a pas de session avant le login)
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("", handlers.GetCatalog)
		catalog.GET("/:id", handlers.GetCatalogProduct)
		catalog.POST("/refresh", middleware.RefreshRateLimit(), handlers.RefreshCatalog)
	}

	// Afficheur client
	r.GET("/ws/terminal", handlers.TerminalWebSocket)

	// Configuration du poste (hors garde admin : c'est le setup qui décide)
	r.POST("/api/admin/device", handlers.SetDeviceMAC)
	r.GET("/api/admin/device", handlers.GetDeviceMAC)

	// Session caisse
	authed := r.Group("/api", middleware.AuthRequired())
	{
		authed.GET("/cart", handlers.GetCart)
		authed.POST("/cart/add", handlers.AddToCart)
		authed.PUT("/cart/:productId", handlers.UpdateCartQuantity)
		authed.DELETE("/cart/:productId", handlers.RemoveFromCart)
		authed.DELETE("/cart", handlers.ClearCart)

		authed.GET("/checkout", handlers.GetCheckoutState)
		authed.POST("/checkout/begin", handlers.BeginCheckout)
		authed.GET("/checkout/qr", handlers.GetTransferQR)
		authed.POST("/checkout/confirm-transfer", handlers.ConfirmTransfer)
		authed.GET("/checkout/delivery", handlers.GetDeliveryForm)
		authed.PUT("/checkout/delivery", handlers.UpdateDeliveryForm)
		authed.POST("/checkout/confirm", handlers.ConfirmFulfillment)
		authed.POST("/checkout/cancel", handlers.CancelCheckout)
		authed.GET("/checkout/result", handlers.GetCheckoutResult)

		authed.GET("/orders/me", handlers.GetMyOrders)
		authed.GET("/orders/:id/receipt", handlers.GetOrderReceipt)
	}

	// Console d'administration, réservée aux postes de la liste blanche
	adminGroup := r.Group("/api/admin", middleware.RequireAdmin)
	{
		adminGroup.GET("/products", handlers.AdminListProducts)
		adminGroup.POST("/products", handlers.AdminSaveProduct)
		adminGroup.PUT("/products/:id", handlers.AdminSaveProduct)
		adminGroup.DELETE("/products/:id", handlers.AdminDeleteProduct)
		adminGroup.PATCH("/products/:id/stock", handlers.AdminUpdateStock)

		adminGroup.GET("/categories", handlers.AdminListCategories)
		adminGroup.POST("/categories", handlers.AdminSaveCategory)
		adminGroup.PUT("/categories/:id", handlers.AdminSaveCategory)
		adminGroup.DELETE("/categories/:id", handlers.AdminDeleteCategory)

		adminGroup.GET("/orders", handlers.AdminListOrders)
		adminGroup.PATCH("/orders/:id/status", handlers.AdminUpdateOrderStatus)

		adminGroup.GET("/users", handlers.AdminListUsers)
		adminGroup.POST("/users", handlers.AdminSaveUser)
		adminGroup.PUT("/users/:id", handlers.AdminSaveUser)
		adminGroup.DELETE("/users/:id", handlers.AdminDeleteUser)
	}
}
