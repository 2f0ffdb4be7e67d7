package store

import (
	"context"

	"github.com/Kariqs/vastra-api/models"
	"github.com/shopspring/decimal"
)

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	SetOrderTotal(ctx context.Context, orderID uint, total decimal.Decimal) error
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetOrderForUser(ctx context.Context, orderID, userID uint) (*models.Order, error)
	ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error)
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.conn(ctx).Omit("OrderItems", "Payment", "Coupon").Create(order).Error
}

func (s *GormStore) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.conn(ctx).Create(&items).Error
}

func (s *GormStore) SetOrderTotal(ctx context.Context, orderID uint, total decimal.Decimal) error {
	return s.conn(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (s *GormStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return s.conn(ctx).Create(payment).Error
}

func (s *GormStore) GetOrderForUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	err := s.conn(ctx).
		Preload("OrderItems", orderByID).
		Preload("Payment").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *GormStore) ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.conn(ctx).
		Preload("OrderItems", orderByID).
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}
