package routes

import (
	"net/http"

	"duckstore_back_end/internal/handlers"
	"duckstore_back_end/internal/handlers/admin"
	"duckstore_back_end/internal/handlers/payement"
	"duckstore_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Deps regroupe les handlers construits au démarrage.
type Deps struct {
	Checkout  *payement.CheckoutHandler
	Orders    *handlers.OrderHandler
	Ducks     *handlers.DuckHandler
	Admin     *admin.SearchHandler
	JWTSecret []byte
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	// Mauvais verbe sur une route connue → 405, format attendu par le front
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	api := r.Group("/api")

	// Pipeline de commande
	api.POST("/payment/create-checkout-session", d.Checkout.CreateCheckoutSession)
	api.POST("/orders/save-order", d.Orders.SaveOrder)
	// pas de GET /orders/:sessionId direct : ça avalerait le 405 attendu
	// sur GET /orders/save-order
	api.GET("/orders/by-session/:sessionId", d.Orders.GetOrder)

	// Catalogue des canards de base
	api.GET("/ducks", d.Ducks.ListDucks)

	// Back-office
	adminGroup := api.Group("/admin", middleware.AdminRequired(d.JWTSecret))
	adminGroup.GET("/orders/search", d.Admin.SearchOrders)
}
