package paymentcontroller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createOrderRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// CreateOrder asks the gateway for a payment order over the requested amount.
// The gateway works in minor units, so the amount is converted to paise.
// Gateway failures surface immediately, there is no retry.
func (h *Handler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Amount is Required"})
			return
		}

		data := map[string]interface{}{
			"amount":   int64(math.Round(req.Amount * 100)),
			"currency": "INR",
			"receipt":  "receipt_" + time.Now().Format("20060102150405") + "-" + uuid.NewString(),
		}

		order, err := h.Orders.Create(data, nil)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to create payment order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// VerifyPayment recomputes the gateway signature over "order_id|payment_id"
// and compares it to what the client supplied. No order state is kept
// between creation and verification; this check is the only integrity
// guarantee that the payment was not fabricated.
func (h *Handler) VerifyPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "order_id, payment_id and signature are required"})
			return
		}

		if !h.signatureValid(req.OrderID, req.PaymentID, req.Signature) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
	}
}

func (h *Handler) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.Secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
