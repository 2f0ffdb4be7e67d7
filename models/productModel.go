package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Description string
	ImageUrl    string
}

type ProductImage struct {
	gorm.Model
	ProductID   uint   `gorm:"index;not null"`
	ImageUrl    string `gorm:"not null"`
	IsMainImage bool   `gorm:"not null;default:false"`
}

type ProductVariant struct {
	gorm.Model
	ProductID       uint            `gorm:"index;not null"`
	SKU             string          `gorm:"size:100;not null"`
	Size            string          `gorm:"size:50"`
	Color           string          `gorm:"size:50"`
	Material        *string         `gorm:"size:100"`
	StockQuantity   int             `gorm:"not null;default:0"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// Product.CreatedAt doubles as the product's created date.
type Product struct {
	gorm.Model
	Name        string          `gorm:"size:100;not null"`
	NameFolded  string          `gorm:"size:400;index"`
	Description string          `gorm:"not null"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive    bool            `gorm:"not null"`
	CategoryID  uint            `gorm:"index;not null"`
	Category    Category
	Images      []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// FoldName case-folds a product name for case-insensitive search. Search
// terms must go through the same folding.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

func (p *Product) BeforeSave(*gorm.DB) error {
	p.NameFolded = FoldName(p.Name)
	return nil
}

// Price returns the effective price of the variant for the given base price.
func (v ProductVariant) Price(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Add(v.PriceAdjustment)
}
