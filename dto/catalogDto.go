package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type CreateVariantRequest struct {
	SKU             string          `json:"sku"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	Material        *string         `json:"material"`
	StockQuantity   int             `json:"stockQuantity"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
}

// CreateProductRequest is used for create and update. Update applies the
// scalar fields only. The product service validates it.
type CreateProductRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	BasePrice   decimal.Decimal        `json:"basePrice"`
	IsActive    *bool                  `json:"isActive"`
	CategoryID  uint                   `json:"categoryId"`
	ImageURLs   []string               `json:"imageUrls"`
	Variants    []CreateVariantRequest `json:"variants"`
}

type ProductImageResponse struct {
	ID          uint   `json:"id"`
	ImageURL    string `json:"imageUrl"`
	IsMainImage bool   `json:"isMainImage"`
}

type ProductVariantResponse struct {
	ID              uint            `json:"id"`
	SKU             string          `json:"sku"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	Material        *string         `json:"material"`
	StockQuantity   int             `json:"stockQuantity"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	Price           decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	ID          uint                     `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	BasePrice   decimal.Decimal          `json:"basePrice"`
	CreatedDate time.Time                `json:"createdDate"`
	IsActive    bool                     `json:"isActive"`
	CategoryID  uint                     `json:"categoryId"`
	Category    *CategoryResponse        `json:"category"`
	Images      []ProductImageResponse   `json:"images"`
	Variants    []ProductVariantResponse `json:"variants"`
}
