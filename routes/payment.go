package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/config"
	"github.com/shankarpradhan/Megashopping/controllers/payment"
	"github.com/shankarpradhan/Megashopping/middleware"
)

// SetupPaymentRoutes registers the payment workflow endpoints.
func SetupPaymentRoutes(r *gin.Engine, cfg *config.Config, wf *payment.Workflow) {
	paymentGroup := r.Group("/payment")
	paymentGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// Mint a payment intent with the gateway
		paymentGroup.POST("/order", payment.CreateOrderHandler(wf))

		// Verify the gateway callback and commit the order
		paymentGroup.POST("/verify", payment.VerifyPaymentHandler(wf))

		// Flattened line items across the caller's orders
		paymentGroup.POST("/getorders", payment.GetOrdersHandler(wf))
	}
}
