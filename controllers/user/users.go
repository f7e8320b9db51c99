package usercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

type addUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Answer   string `json:"answer"`
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// userRules is evaluated in order; the first violated rule is reported.
var userRules = []struct {
	message string
	missing func(addUserRequest) bool
}{
	{"name is required", func(r addUserRequest) bool { return r.Name == "" }},
	{"email is required", func(r addUserRequest) bool { return r.Email == "" }},
	{"password is required", func(r addUserRequest) bool { return r.Password == "" }},
	{"phone is required", func(r addUserRequest) bool { return r.Phone == "" }},
	{"address is required", func(r addUserRequest) bool { return r.Address == "" }},
	{"answer is required", func(r addUserRequest) bool { return r.Answer == "" }},
}

// AddUser creates a user. Password and answer are expected to be hashed
// before they reach this handler. A duplicate email is acknowledged as a
// soft success without inserting a second record.
func AddUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user payload"})
			return
		}

		for _, r := range userRules {
			if r.missing(req) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": r.message})
				return
			}
		}

		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Already Added, please login",
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in user adding"})
			return
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Address:  req.Address,
			Answer:   req.Answer,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in user adding"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User Added Successfully",
			"user":    user,
		})
	}
}

// SearchUsers matches the query case-insensitively against name, email or
// phone. An empty query returns everyone; zero matches is a 404.
func SearchUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")

		q := db.Model(&models.User{})
		if query != "" {
			pattern := "%" + query + "%"
			q = q.Where(
				"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(phone) LIKE LOWER(?)",
				pattern, pattern, pattern,
			)
		}

		var users []models.User
		if err := q.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in searching users"})
			return
		}
		if len(users) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No users found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Users found successfully",
			"users":   users,
		})
	}
}

// UpdateUser merges the supplied fields into an existing user.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating user"})
			}
			return
		}

		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user payload"})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating user"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User updated successfully",
			"user":    user,
		})
	}
}

// DeleteUser removes a user by id; unknown ids are a 404, unlike product
// deletion which succeeds blindly.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user ID"})
			return
		}

		res := db.Delete(&models.User{}, id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in deleting user"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User deleted successfully",
		})
	}
}
