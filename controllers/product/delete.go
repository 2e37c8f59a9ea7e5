package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// DeleteProduct removes the product row first, then deletes its image
// files best-effort. A failed file delete never resurrects the product.
func DeleteProduct(db *gorm.DB, store *ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		images, err := product.ImageList()
		if err != nil {
			log.Printf("⚠️ Unreadable image list on product %d: %v", product.ID, err)
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		for _, image := range images {
			if err := store.Delete(image); err != nil {
				log.Printf("⚠️ Failed to delete image %s of product %d: %v", image.ID, product.ID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
