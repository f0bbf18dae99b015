package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/cache"
	"github.com/shankarpradhan/Megashopping/config"
	cartControllers "github.com/shankarpradhan/Megashopping/controllers/cart"
	productcontroller "github.com/shankarpradhan/Megashopping/controllers/product"
	userControllers "github.com/shankarpradhan/Megashopping/controllers/user"
	"github.com/shankarpradhan/Megashopping/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cartCache cache.Cache) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db, cartCache))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db, cartCache))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db, cartCache)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db, cartCache))             // DELETE /user/cart
		}
	}

	// ──────────────── Browse Products (public) ────────────────
	r.GET("/products", productcontroller.GetProducts(db))        // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(db)) // GET /products/:id
}
