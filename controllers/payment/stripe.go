package paymentcontroller

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"

	ordercontroller "github.com/kanak8148/SHOPING---APP/controllers/order"
	"github.com/kanak8148/SHOPING---APP/models"
)

type cartItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type googlePayRequest struct {
	Token string     `json:"token" binding:"required"`
	Cart  []cartItem `json:"cart" binding:"required"`
}

// GooglePay charges the processor with a client-side token for the cart
// total and records the order for the signed-in buyer on success. The cart
// is snapshotted into order items so later product edits cannot rewrite it.
func (h *Handler) GooglePay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req googlePayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "token and cart are required"})
			return
		}

		buyerID, ok := buyerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Sign in required"})
			return
		}

		var total float64
		for _, item := range req.Cart {
			total += item.Price
		}

		params := &stripe.ChargeParams{
			Amount:   stripe.Int64(int64(math.Round(total * 100))),
			Currency: stripe.String(string(stripe.CurrencyINR)),
		}
		if err := params.SetSource(req.Token); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment token"})
			return
		}

		charge, err := h.Charges.New(params)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Payment processing error"})
			return
		}
		if charge.Status != stripe.ChargeStatusSucceeded {
			c.JSON(http.StatusPaymentRequired, gin.H{"success": false, "message": "Payment failed"})
			return
		}

		order := models.Order{
			BuyerID:       buyerID,
			PaymentRef:    charge.ID,
			PaymentStatus: string(charge.Status),
			TotalAmount:   total,
		}
		for _, item := range req.Cart {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in recording order"})
			return
		}

		ordercontroller.BroadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// buyerFromContext reads the user id set by the sign-in middleware.
func buyerFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case float64: // JWT claims decode numbers as float64
		return uint(id), true
	default:
		return 0, false
	}
}
