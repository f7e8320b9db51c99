package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// GetProductBySlug returns a single product with its category, photo omitted.
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		err := db.Omit("photo").Preload("Category").
			Where("slug = ?", c.Param("slug")).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting single product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Single Product Fetched",
			"product": product,
		})
	}
}

// ProductPhoto streams the raw photo bytes for a product id. A product
// without a photo yields an empty 200 body, matching the storefront's
// expectation of a silently missing image.
func ProductPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("pid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Select("photo", "photo_type").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting photo"})
			}
			return
		}

		if len(product.Photo) == 0 {
			c.Status(http.StatusOK)
			return
		}
		c.Data(http.StatusOK, product.PhotoType, product.Photo)
	}
}
