package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same form
// fields as CreateProduct and an optional replacement "image" file, which
// is appended to the image list.
func UpdateProduct(db *gorm.DB, store *ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("category"); v != "" {
			product.Category = v
		}
		if v := c.PostForm("subCategory"); v != "" {
			product.SubCategory = v
		}
		if v := c.PostForm("gender"); v != "" {
			product.Gender = v
		}
		if v := c.PostForm("brand"); v != "" {
			product.Brand = v
		}
		if v := c.PostForm("sizes"); v != "" {
			product.Sizes = v
		}
		if v := c.PostForm("sku"); v != "" {
			product.SKU = v
		}
		if v := c.PostForm("price"); v != "" {
			if price, err := strconv.ParseFloat(v, 64); err == nil {
				product.Price = price
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("quantity"); v != "" {
			if quantity, err := strconv.Atoi(v); err == nil {
				product.Quantity = quantity
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}
		if v := c.PostForm("isActive"); v != "" {
			product.IsActive = v == "true"
		}

		if file, err := c.FormFile("image"); err == nil {
			image, err := store.Save(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			images, _ := product.ImageList()
			if err := product.SetImages(append(images, image)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode images"})
				return
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
