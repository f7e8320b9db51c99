package productcontroller

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// CreateProduct creates a product from a multipart form with an optional photo.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		product := models.Product{
			Name:        in.Name,
			Slug:        slug.Make(in.Name),
			Description: in.Description,
			Price:       price,
			Quantity:    quantity,
			Shipping:    shipping,
			CategoryID:  uint(categoryID),
		}

		if in.Photo != nil {
			data, contentType, err := readPhoto(in.Photo)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to read photo"})
				return
			}
			product.Photo = data
			product.PhotoType = contentType
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in creating product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product Created Successfully",
			"product": product,
		})
	}
}

func readPhoto(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
