package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// SearchProducts matches the keyword case-insensitively against name or
// description. Pattern match only, no relevance ranking.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Param("keyword")

		var products []models.Product
		err := BuildQuery(db, Filters{Keyword: keyword}).Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in search product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// RelatedProducts returns up to 3 other products in the same category.
func RelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid, err := strconv.ParseUint(c.Param("pid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}
		cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category ID"})
			return
		}

		var products []models.Product
		err = db.Omit("photo").Preload("Category").
			Where("category_id = ? AND id <> ?", cid, pid).
			Limit(PerPageRelated).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting related product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// ProductsByCategory lists a category's products by category slug.
func ProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		err := db.Where("slug = ?", c.Param("slug")).First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting products"})
			}
			return
		}

		var products []models.Product
		err = db.Omit("photo").Preload("Category").
			Where("category_id = ?", category.ID).
			Order("created_at DESC").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"category": category,
			"products": products,
		})
	}
}
