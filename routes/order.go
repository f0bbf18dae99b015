package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/config"
	orderControllers "github.com/shankarpradhan/Megashopping/controllers/order"
	"github.com/shankarpradhan/Megashopping/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the admin-facing order endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		// Fetch all orders
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))

		// Update order status (administrative transition)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
