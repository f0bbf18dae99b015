package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/auth"
	"github.com/shankarpradhan/Megashopping/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg.JWTSecret))
		authGroup.POST("/reset-password", auth.ResetPassword(db))
	}
}
