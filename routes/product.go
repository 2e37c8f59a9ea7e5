package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/eonerhime/easy-shoppers-hub/controllers/product"
)

// SetupProductRoutes registers the public "/products/*" endpoints.
// Browsing needs no session; only cart and checkout do.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(deps.DB))                   // GET /products?search=&category=&min_price=&max_price=
		products.GET("/:id", productcontroller.GetProductByID(deps.DB))             // GET /products/:id
		products.GET("/:id/related", productcontroller.GetRelatedProducts(deps.DB)) // GET /products/:id/related
	}
}
