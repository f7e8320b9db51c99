package productcontroller

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/kanak8148/SHOPING---APP/models"
)

// productInput is the multipart field set shared by create and update.
type productInput struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	Quantity    string
	Shipping    string
	Photo       *multipart.FileHeader
}

func readProductInput(c *gin.Context) productInput {
	in := productInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		CategoryID:  c.PostForm("category"),
		Quantity:    c.PostForm("quantity"),
		Shipping:    c.PostForm("shipping"),
	}
	if file, err := c.FormFile("photo"); err == nil {
		in.Photo = file
	}
	return in
}

// requiredRules is evaluated in order; the first violated rule is reported.
var requiredRules = []struct {
	message string
	missing func(productInput) bool
}{
	{"Name is Required", func(in productInput) bool { return in.Name == "" }},
	{"Description is Required", func(in productInput) bool { return in.Description == "" }},
	{"Price is Required", func(in productInput) bool { return in.Price == "" }},
	{"Category is Required", func(in productInput) bool { return in.CategoryID == "" }},
	{"Quantity is Required", func(in productInput) bool { return in.Quantity == "" }},
	{"Photo should be less than 1MB", func(in productInput) bool {
		return in.Photo != nil && in.Photo.Size > models.MaxPhotoBytes
	}},
}

// validateProductInput returns the first violation message, or "" if valid.
func validateProductInput(in productInput) string {
	for _, r := range requiredRules {
		if r.missing(in) {
			return r.message
		}
	}
	return ""
}
