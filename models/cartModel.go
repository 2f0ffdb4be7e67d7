package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID uint       `gorm:"uniqueIndex;not null"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem rows are unique per (CartID, ProductVariantID); adding an existing
// variant bumps Quantity instead of inserting.
type CartItem struct {
	gorm.Model
	CartID           uint `gorm:"uniqueIndex:idx_cart_items_cart_variant;not null"`
	ProductVariantID uint `gorm:"uniqueIndex:idx_cart_items_cart_variant;not null"`
	Quantity         int  `gorm:"not null"`
}
