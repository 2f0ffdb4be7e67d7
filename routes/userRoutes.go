package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

func UserRoutes(api *gin.RouterGroup, c *controllers.UserController, requireAuth gin.HandlerFunc) {
	user := api.Group("/user", requireAuth)
	{
		user.GET("/profile", c.GetProfile)
		user.GET("/addresses", c.GetAddresses)
		user.POST("/addresses", c.AddAddress)
		user.GET("/addresses/:id", c.GetAddress)
		user.DELETE("/addresses/:id", c.RemoveAddress)
	}
}
