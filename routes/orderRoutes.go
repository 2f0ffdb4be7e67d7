package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, c *controllers.OrderController, requireAuth gin.HandlerFunc) {
	order := api.Group("/order", requireAuth)
	{
		order.POST("", c.CreateOrder)
		order.GET("", c.GetOrders)
		order.GET("/:id", c.GetOrder)
	}
}
