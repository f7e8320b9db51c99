package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/kanak8148/SHOPING---APP/controllers/order"
	"github.com/kanak8148/SHOPING---APP/middleware"
)

// SetupOrderRoutes registers all "/order/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	order := api.Group("/order")
	{
		// Admin listing
		order.GET("/all-orders", middleware.RequireAdminKey, ordercontroller.GetAllOrders(db))

		// Buyer's own orders
		order.GET("/my-orders", middleware.RequireSignIn, ordercontroller.GetMyOrders(db))

		// websocket endpoint for real-time order updates
		order.GET("/ws", ordercontroller.OrderFeed)
	}
}
