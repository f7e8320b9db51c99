package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/kanak8148/SHOPING---APP/controllers/product"
	"github.com/kanak8148/SHOPING---APP/middleware"
)

// SetupProductRoutes registers all "/product/*" endpoints. Mutations and the
// catalog export require the admin API key.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	product := api.Group("/product")
	{
		// ──────────────── Public catalog ────────────────
		product.GET("/get-product", productcontroller.GetProducts(db))
		product.GET("/get-product/:slug", productcontroller.GetProductBySlug(db))
		product.GET("/product-photo/:pid", productcontroller.ProductPhoto(db))
		product.POST("/product-filters", productcontroller.FilterProducts(db))
		product.GET("/product-count", productcontroller.ProductCount(db))
		product.GET("/product-list/:page", productcontroller.ProductList(db))
		product.GET("/search/:keyword", productcontroller.SearchProducts(db))
		product.GET("/related-product/:pid/:cid", productcontroller.RelatedProducts(db))
		product.GET("/product-category/:slug", productcontroller.ProductsByCategory(db))

		// ──────────────── Admin mutations ────────────────
		admin := product.Group("")
		admin.Use(middleware.RequireAdminKey)
		{
			admin.POST("/create-product", productcontroller.CreateProduct(db))
			admin.PUT("/update-product/:pid", productcontroller.UpdateProduct(db))
			admin.DELETE("/delete-product/:pid", productcontroller.DeleteProduct(db))
			admin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
