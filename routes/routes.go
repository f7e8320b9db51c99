package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentcontroller "github.com/kanak8148/SHOPING---APP/controllers/payment"
)

// SetupRoutes is the single entry‐point that wires up all route groups
// under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, payments *paymentcontroller.Handler) {
	api := r.Group("/api")

	SetupProductRoutes(api, db)
	SetupCategoryRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupPaymentRoutes(api, db, payments)
}
