package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// CreateCategory creates a category; the slug is derived from the name the
// same way product slugs are.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is Required"})
			return
		}

		category := models.Category{Name: in.Name, Slug: slug.Make(in.Name)}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in creating category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "Category Created Successfully",
			"category": category,
		})
	}
}

// GetCategories returns all categories.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
	}
}

// GetCategoryBySlug returns a single category.
func GetCategoryBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		err := db.Where("slug = ?", c.Param("slug")).First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting category"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}
