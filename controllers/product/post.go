package productcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// CreateProduct creates a product from a multipart form with one or more
// images. Images are uploaded first; if the product row cannot be created
// the uploaded files are deleted again, best-effort.
func CreateProduct(db *gorm.DB, store *ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var quantity int
		if quantityStr := c.PostForm("quantity"); quantityStr != "" {
			quantity, err = strconv.Atoi(quantityStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image files provided"})
			return
		}

		var images []models.ProductImage
		for _, file := range files {
			image, err := store.Save(c, file)
			if err != nil {
				rollbackImages(store, images)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			images = append(images, image)
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Category:    c.PostForm("category"),
			SubCategory: c.PostForm("subCategory"),
			Gender:      c.PostForm("gender"),
			Brand:       c.PostForm("brand"),
			Sizes:       c.PostForm("sizes"),
			Quantity:    quantity,
			SKU:         c.PostForm("sku"),
			IsActive:    c.DefaultPostForm("isActive", "true") == "true",
		}
		if err := product.SetImages(images); err != nil {
			rollbackImages(store, images)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode images"})
			return
		}

		if err := db.Create(&product).Error; err != nil {
			rollbackImages(store, images)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data": gin.H{
				"product": product,
				"images":  images,
			},
		})
	}
}

func rollbackImages(store *ImageStore, images []models.ProductImage) {
	for _, image := range images {
		if err := store.Delete(image); err != nil {
			log.Printf("⚠️ Failed to roll back uploaded image %s: %v", image.ID, err)
		}
	}
}
