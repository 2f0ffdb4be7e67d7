package store

import (
	"context"

	"github.com/Kariqs/vastra-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine is the flat read model behind cart views and order placement: one
// cart item joined to its variant, the variant's product and the product's
// main image. Items whose variant or product is gone do not produce a line.
type CartLine struct {
	CartItemID       uint
	ProductVariantID uint
	Quantity         int
	ProductID        uint
	ProductName      string
	VariantSKU       string
	Size             string
	Color            string
	Material         *string
	BasePrice        decimal.Decimal
	PriceAdjustment  decimal.Decimal
	ImageURL         string
}

// UnitPrice is the product's base price plus the variant's adjustment.
func (l CartLine) UnitPrice() decimal.Decimal {
	return l.BasePrice.Add(l.PriceAdjustment)
}

type CartStore interface {
	GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartItemByVariant(ctx context.Context, cartID, variantID uint) (*models.CartItem, error)
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	IncrementCartItem(ctx context.Context, itemID uint, quantity int) error
	UpdateCartItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (bool, error)
	DeleteCartItem(ctx context.Context, cartID, itemID uint) (bool, error)
	ClearCart(ctx context.Context, cartID uint) (int64, error)
	CartLines(ctx context.Context, cartID uint) ([]CartLine, error)
}

func (s *GormStore) GetCartByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (s *GormStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	return s.conn(ctx).Create(cart).Error
}

func (s *GormStore) GetCartItemByVariant(ctx context.Context, cartID, variantID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.conn(ctx).
		Where("cart_id = ? AND product_variant_id = ?", cartID, variantID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	return s.conn(ctx).Create(item).Error
}

// IncrementCartItem adds quantity in SQL so concurrent adds do not overwrite
// each other.
func (s *GormStore) IncrementCartItem(ctx context.Context, itemID uint, quantity int) error {
	return s.conn(ctx).Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
}

func (s *GormStore) UpdateCartItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (bool, error) {
	result := s.conn(ctx).Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	return result.RowsAffected > 0, result.Error
}

// Cart lines are transient, so deletes are hard deletes.
func (s *GormStore) DeleteCartItem(ctx context.Context, cartID, itemID uint) (bool, error) {
	result := s.conn(ctx).Unscoped().
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	return result.RowsAffected > 0, result.Error
}

func (s *GormStore) ClearCart(ctx context.Context, cartID uint) (int64, error) {
	result := s.conn(ctx).Unscoped().
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (s *GormStore) CartLines(ctx context.Context, cartID uint) ([]CartLine, error) {
	var lines []CartLine
	err := s.conn(ctx).Table("cart_items AS ci").
		Select(`ci.id AS cart_item_id,
			ci.product_variant_id AS product_variant_id,
			ci.quantity AS quantity,
			p.id AS product_id,
			p.name AS product_name,
			pv.sku AS variant_sku,
			pv.size AS size,
			pv.color AS color,
			pv.material AS material,
			p.base_price AS base_price,
			pv.price_adjustment AS price_adjustment,
			COALESCE(pi.image_url, '') AS image_url`).
		Joins("JOIN product_variants AS pv ON pv.id = ci.product_variant_id AND pv.deleted_at IS NULL").
		Joins("JOIN products AS p ON p.id = pv.product_id AND p.deleted_at IS NULL").
		Joins("LEFT JOIN product_images AS pi ON pi.product_id = p.id AND pi.is_main_image = ? AND pi.deleted_at IS NULL", true).
		Where("ci.cart_id = ? AND ci.deleted_at IS NULL", cartID).
		Order("ci.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return dedupeLines(lines), nil
}

// A product with several main images would repeat its lines; keep the first.
func dedupeLines(lines []CartLine) []CartLine {
	seen := make(map[uint]struct{}, len(lines))
	out := lines[:0]
	for _, line := range lines {
		if _, ok := seen[line.CartItemID]; ok {
			continue
		}
		seen[line.CartItemID] = struct{}{}
		out = append(out, line)
	}
	return out
}
