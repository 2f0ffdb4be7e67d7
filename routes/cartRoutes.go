package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(api *gin.RouterGroup, c *controllers.CartController, requireAuth gin.HandlerFunc) {
	cart := api.Group("/cart", requireAuth)
	{
		cart.GET("", c.GetCart)
		cart.DELETE("", c.ClearCart)
		cart.POST("/items", c.AddItem)
		cart.PUT("/items", c.UpdateItem)
		cart.DELETE("/items/:id", c.RemoveItem)
	}
}
