package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon is persisted and referenced by Order.CouponID but never applied to
// order totals.
type Coupon struct {
	gorm.Model
	Code               string          `gorm:"uniqueIndex;size:50;not null"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountPercentage int             `gorm:"not null;default:0"`
	ExpirationDate     time.Time
	IsActive           bool            `gorm:"not null;default:true"`
	MinimumOrderAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}
