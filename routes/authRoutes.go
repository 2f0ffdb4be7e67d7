package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

// AuthRoutes registers the public auth endpoints. limit may be nil.
func AuthRoutes(api *gin.RouterGroup, c *controllers.AuthController, limit gin.HandlerFunc) {
	auth := api.Group("/auth")
	if limit != nil {
		auth.Use(limit)
	}
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
	}
}
