package routes

import (
	"github.com/Kariqs/vastra-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(api *gin.RouterGroup, c *controllers.ProductController, requireAuth gin.HandlerFunc) {
	product := api.Group("/product")
	{
		product.GET("", c.GetProducts)
		product.GET("/:id", c.GetProduct)
		product.POST("", requireAuth, c.CreateProduct)
		product.PUT("/:id", requireAuth, c.UpdateProduct)
		product.DELETE("/:id", requireAuth, c.DeleteProduct)
		product.DELETE("/:id/variants/:variantId", requireAuth, c.DeleteVariant)
		product.POST("/:id/images", requireAuth, c.UploadImages)
	}
}
