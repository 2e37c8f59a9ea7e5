package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/eonerhime/easy-shoppers-hub/controllers/cart"
	orderControllers "github.com/eonerhime/easy-shoppers-hub/controllers/order"
	userControllers "github.com/eonerhime/easy-shoppers-hub/controllers/user"
	"github.com/eonerhime/easy-shoppers-hub/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.DB, deps.Cfg.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))                      // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.DB, deps.Carts))            // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Carts))        // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Carts))     // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))                 // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(deps.Checkout))              // POST /user/orders
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(deps.DB))                  // GET /user/orders
			orderGroup.GET("/:orderNumber", orderControllers.GetOrderByNumberHandler(deps.DB))   // GET /user/orders/:orderNumber
		}
	}
}
