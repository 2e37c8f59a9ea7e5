package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/eonerhime/easy-shoppers-hub/controllers/order"
	productcontroller "github.com/eonerhime/easy-shoppers-hub/controllers/product"
	userControllers "github.com/eonerhime/easy-shoppers-hub/controllers/user"
	"github.com/eonerhime/easy-shoppers-hub/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. API-key-protected.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.Cfg.AdminAPIKey))
	{
		// ──────────────── Product Management ────────────────
		adminGroup.POST("/products", productcontroller.CreateProduct(deps.DB, deps.Images))       // POST /admin/products
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(deps.DB, deps.Images))    // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(deps.DB, deps.Images)) // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(deps.DB))      // GET /admin/products/export

		// ──────────────── Order Management ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(deps.DB))                                // GET /admin/orders
		adminGroup.PUT("/orders/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(deps.DB)) // PUT /admin/orders/:orderID/payment-status
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(deps.DB))                         // GET /admin/orders/export

		// ──────────────── Users ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB)) // GET /admin/users
	}
}
