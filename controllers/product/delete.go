package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// DeleteProduct removes a product by id. There is no existence check first,
// so deleting an unknown id still reports success — callers cannot tell
// "deleted" from "never existed".
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("pid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		if err := db.Delete(&models.Product{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while deleting product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product Deleted Successfully",
		})
	}
}
