package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/kanak8148/SHOPING---APP/controllers/product"
	"github.com/kanak8148/SHOPING---APP/middleware"
)

// SetupCategoryRoutes registers all "/category/*" endpoints.
func SetupCategoryRoutes(api *gin.RouterGroup, db *gorm.DB) {
	category := api.Group("/category")
	{
		category.GET("/get-category", productcontroller.GetCategories(db))
		category.GET("/get-category/:slug", productcontroller.GetCategoryBySlug(db))

		category.POST("/create-category",
			middleware.RequireAdminKey,
			productcontroller.CreateCategory(db),
		)
	}
}
