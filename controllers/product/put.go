package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// UpdateProduct replaces a product's fields by id. Same validation as create;
// the slug is recomputed from the new name, the photo is replaced only when
// a new one is supplied.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("pid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		in := readProductInput(c)
		if msg := validateProductInput(in); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		price, err := strconv.ParseFloat(in.Price, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
			return
		}
		quantity, err := strconv.Atoi(in.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quantity"})
			return
		}
		categoryID, err := strconv.ParseUint(in.CategoryID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}
		shipping, _ := strconv.ParseBool(in.Shipping)

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating product"})
			}
			return
		}

		product.Name = in.Name
		product.Slug = slug.Make(in.Name)
		product.Description = in.Description
		product.Price = price
		product.Quantity = quantity
		product.Shipping = shipping
		product.CategoryID = uint(categoryID)

		if in.Photo != nil {
			data, contentType, err := readPhoto(in.Photo)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read photo"})
				return
			}
			product.Photo = data
			product.PhotoType = contentType
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product Updated Successfully",
			"product": product,
		})
	}
}
