package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	usercontroller "github.com/kanak8148/SHOPING---APP/controllers/user"
	"github.com/kanak8148/SHOPING---APP/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Every one of them
// requires a prior sign-in.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	user := api.Group("/user")
	user.Use(middleware.RequireSignIn)
	{
		user.POST("/addUser", usercontroller.AddUser(db))
		user.GET("/searchUser", usercontroller.SearchUsers(db))
		user.PUT("/updateUser/:id", usercontroller.UpdateUser(db))
		user.DELETE("/deleteUser/:id", usercontroller.DeleteUser(db))
	}
}
