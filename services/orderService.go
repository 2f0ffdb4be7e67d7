package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderService struct {
	store store.Store
	now   func() time.Time
}

func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st, now: time.Now}
}

// CreateOrder turns the user's cart into an order with frozen unit prices and
// a pending mock payment, then empties the cart. All writes share one
// transaction.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req dto.CreateOrderRequest) (dto.OrderResponse, error) {
	shipping := strings.TrimSpace(req.ShippingAddress)
	method := strings.TrimSpace(req.PaymentMethod)
	fields := map[string]string{}
	if method == "" {
		fields["paymentMethod"] = "Payment method is required."
	}
	if shipping == "" {
		fields["shippingAddress"] = "Shipping address is required."
	}
	if len(fields) > 0 {
		return dto.OrderResponse{}, &ValidationError{Fields: fields}
	}
	billing := strings.TrimSpace(req.BillingAddress)
	if billing == "" {
		billing = shipping
	}

	var orderID uint
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		cart, err := tx.GetCartByUser(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}

		lines, err := tx.CartLines(ctx, cart.ID)
		if err != nil {
			return fmt.Errorf("load cart lines: %w", err)
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		now := s.now().UTC()
		order := &models.Order{
			UserID:          userID,
			OrderDate:       now,
			Status:          models.OrderStatusPending,
			TotalAmount:     decimal.Zero,
			ShippingAddress: shipping,
			BillingAddress:  billing,
			ContactPhone:    strings.TrimSpace(req.ContactPhone),
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:          order.ID,
				ProductVariantID: line.ProductVariantID,
				Quantity:         line.Quantity,
				UnitPrice:        line.UnitPrice(),
				Snapshot: datatypes.NewJSONType(models.VariantSnapshot{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					SKU:         line.VariantSKU,
					Size:        line.Size,
					Color:       line.Color,
					Material:    line.Material,
				}),
			}
			total = total.Add(item.LineTotal())
			items = append(items, item)
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		if err := tx.SetOrderTotal(ctx, order.ID, total); err != nil {
			return fmt.Errorf("set order total: %w", err)
		}

		payment := &models.Payment{
			OrderID:        order.ID,
			Amount:         total,
			PaymentMethod:  method,
			PaymentGateway: models.MockPaymentGateway,
			TransactionID:  uuid.NewString(),
			PaymentStatus:  models.PaymentStatusPending,
			PaymentDate:    now,
		}
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		if _, err := tx.ClearCart(ctx, cart.ID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		orderID = order.ID
		return nil
	})
	if errors.Is(err, ErrEmptyCart) {
		return dto.OrderResponse{}, ErrEmptyCart
	}
	if err != nil {
		return dto.OrderResponse{}, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
	}

	return s.GetOrder(ctx, orderID, userID)
}

// GetOrder returns ErrNotFound for orders placed by other users.
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uint) (dto.OrderResponse, error) {
	order, err := s.store.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return dto.OrderResponse{}, fmt.Errorf("order %d: %w", orderID, err)
	}
	return toOrderResponse(order), nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]dto.OrderResponse, error) {
	orders, err := s.store.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	res := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, toOrderResponse(&orders[i]))
	}
	return res, nil
}
