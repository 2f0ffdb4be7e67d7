package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	PaymentStatusPending = "Pending"
	MockPaymentGateway   = "MockGateway"
)

type Order struct {
	gorm.Model
	UserID          uint            `gorm:"index;not null"`
	OrderDate       time.Time       `gorm:"not null"`
	Status          string          `gorm:"size:50;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAddress string
	BillingAddress  string
	ContactPhone    string      `gorm:"size:50"`
	CouponID        *uint       `gorm:"index"`
	Coupon          *Coupon     `gorm:"constraint:OnDelete:SET NULL"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment         *Payment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// VariantSnapshot freezes what the customer bought, independent of later
// catalog edits or deletions.
type VariantSnapshot struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Material    *string `json:"material,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID          uint            `gorm:"index;not null"`
	ProductVariantID uint            `gorm:"index;not null"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Snapshot         datatypes.JSONType[VariantSnapshot]
}

// LineTotal is Quantity x UnitPrice.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Payment struct {
	gorm.Model
	OrderID        uint            `gorm:"uniqueIndex;not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod  string          `gorm:"size:50;not null"`
	PaymentGateway string          `gorm:"size:50"`
	TransactionID  string          `gorm:"size:64;not null"`
	PaymentStatus  string          `gorm:"size:50;not null"`
	PaymentDate    time.Time       `gorm:"not null"`
}
