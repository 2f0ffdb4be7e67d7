package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	BillingAddress  string `json:"billingAddress"`
	ContactPhone    string `json:"contactPhone"`
}

type OrderItemResponse struct {
	ID               uint            `json:"id"`
	ProductVariantID uint            `json:"productVariantId"`
	ProductID        uint            `json:"productId"`
	ProductName      string          `json:"productName"`
	VariantSKU       string          `json:"variantSku"`
	Size             string          `json:"size"`
	Color            string          `json:"color"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderDate       time.Time           `json:"orderDate"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	ShippingAddress string              `json:"shippingAddress"`
	BillingAddress  string              `json:"billingAddress"`
	ContactPhone    string              `json:"contactPhone"`
	Items           []OrderItemResponse `json:"items"`
	PaymentStatus   string              `json:"paymentStatus"`
	TransactionID   string              `json:"transactionId"`
}
