package ordercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// GetAllOrders lists every order, newest first. Admin surface.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		err := db.Preload("Items").Preload("Buyer").
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in getting orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GetMyOrders lists the signed-in buyer's orders.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Sign in required"})
			return
		}

		var buyerID uint
		switch id := v.(type) {
		case uint:
			buyerID = id
		case float64:
			buyerID = uint(id)
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Sign in required"})
			return
		}

		var orders []models.Order
		err := db.Preload("Items").
			Where("buyer_id = ?", buyerID).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in getting orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
