package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// GetProducts returns the default browse page: newest first, capped at 12,
// photos omitted.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Omit("photo").Preload("Category").
			Order("created_at DESC").
			Limit(PerPageBrowse).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in getting products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"countTotal": len(products),
			"message":    "All Products",
			"products":   products,
		})
	}
}

// ProductList returns page N of the catalog, 8 per page.
func ProductList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.Param("page"))
		if err != nil || page < 1 {
			page = 1
		}

		var products []models.Product
		err = db.Omit("photo").
			Order("created_at DESC").
			Offset((page - 1) * PerPageList).
			Limit(PerPageList).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in per page listing"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// ProductCount returns the total product count. The count is read without
// locking, so it may trail concurrent writes.
func ProductCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in product count"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "total": total})
	}
}

// FilterProducts applies the storefront's checkbox/radio filters.
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f Filters
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid filter payload"})
			return
		}

		var products []models.Product
		if err := BuildQuery(db, f).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while filtering products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
