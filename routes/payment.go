package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentcontroller "github.com/kanak8148/SHOPING---APP/controllers/payment"
	"github.com/kanak8148/SHOPING---APP/middleware"
)

// SetupPaymentRoutes registers all "/payment/*" endpoints. Order creation and
// verification are correlated only by the gateway's order id, so they carry
// no session requirement; the token charge records an order for the signed-in
// buyer and therefore does.
func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB, payments *paymentcontroller.Handler) {
	payment := api.Group("/payment")
	{
		payment.POST("/create-order", payments.CreateOrder())
		payment.POST("/verify-payment", payments.VerifyPayment())
		payment.POST("/google-pay", middleware.RequireSignIn, payments.GooglePay(db))
	}
}
