package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(api *gin.RouterGroup, c *controllers.CategoryController, requireAuth gin.HandlerFunc) {
	category := api.Group("/category")
	{
		category.GET("", c.GetCategories)
		category.GET("/:id", c.GetCategory)
		category.POST("", requireAuth, c.CreateCategory)
		category.PUT("/:id", requireAuth, c.UpdateCategory)
		category.DELETE("/:id", requireAuth, c.DeleteCategory)
	}
}
