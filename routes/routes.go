package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/cart"
	"github.com/eonerhime/easy-shoppers-hub/checkout"
	"github.com/eonerhime/easy-shoppers-hub/config"
	orderControllers "github.com/eonerhime/easy-shoppers-hub/controllers/order"
	productcontroller "github.com/eonerhime/easy-shoppers-hub/controllers/product"
)

// Deps carries everything the route groups need.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Carts    *cart.Service
	Checkout *checkout.Service
	Images   *productcontroller.ImageStore
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public storefront browsing
	SetupProductRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)

	// Realtime order feed for admin dashboards
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
