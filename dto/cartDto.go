package dto

import "github.com/shopspring/decimal"

type AddToCartRequest struct {
	ProductVariantID uint `json:"productVariantId" binding:"required"`
	Quantity         int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CartItemResponse struct {
	ID               uint            `json:"id"`
	ProductID        uint            `json:"productId"`
	ProductName      string          `json:"productName"`
	VariantSKU       string          `json:"variantSku"`
	Size             string          `json:"size"`
	Color            string          `json:"color"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	ImageURL         string          `json:"imageUrl"`
	ProductVariantID uint            `json:"productVariantId"`
}

type CartResponse struct {
	ID          uint               `json:"id"`
	UserID      uint               `json:"userId"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}
