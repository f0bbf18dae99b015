package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/cache"
	"github.com/shankarpradhan/Megashopping/config"
	"github.com/shankarpradhan/Megashopping/controllers/payment"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Admin,
// Order, and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cartCache cache.Cache, wf *payment.Workflow) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg, cartCache)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, cfg)

	// order routes
	SetupOrderRoutes(r, db, cfg)

	// payment workflow routes
	SetupPaymentRoutes(r, cfg, wf)
}
