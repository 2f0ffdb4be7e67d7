package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Vastra API. Endpoints marked * need a bearer token.

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account

CATEGORY
- GET "/api/category" - Get all categories
- GET "/api/category/:id" - Get category by ID
- POST "/api/category" * - Create category
- PUT "/api/category/:id" * - Update category
- DELETE "/api/category/:id" * - Delete category

PRODUCT
- GET "/api/product?search=&categoryId=" - Search products
- GET "/api/product/:id" - Get product by ID
- POST "/api/product" * - Create product with images and variants
- PUT "/api/product/:id" * - Update product
- DELETE "/api/product/:id" * - Delete product
- DELETE "/api/product/:id/variants/:variantId" * - Delete product variant
- POST "/api/product/:id/images" * - Upload product images

CART
- GET "/api/cart" * - View cart
- POST "/api/cart/items" * - Add item to cart
- PUT "/api/cart/items" * - Update cart item quantity
- DELETE "/api/cart/items/:id" * - Remove cart item
- DELETE "/api/cart" * - Clear cart

ORDER
- POST "/api/order" * - Place order from cart
- GET "/api/order" * - Get my orders
- GET "/api/order/:id" * - Get order by ID

USER
- GET "/api/user/profile" * - Get my profile
- GET "/api/user/addresses" * - Get my addresses
- POST "/api/user/addresses" * - Add address
- GET "/api/user/addresses/:id" * - Get address by ID
- DELETE "/api/user/addresses/:id" * - Remove address`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
