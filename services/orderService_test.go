package services

import (
	"errors"
	"time"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store/storetest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var checkout = dto.CreateOrderRequest{
	PaymentMethod:   "Card",
	ShippingAddress: "1 Main St, Nairobi",
	ContactPhone:    "+254700000000",
}

func (s *ServiceTestSuite) TestCreateOrderSnapshotsCart() {
	a := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	b := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Sock", "50", "0")
	s.addToCart(s.user.ID, a.Variants[0].ID, 2)
	s.addToCart(s.user.ID, b.Variants[0].ID, 1)

	placedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.fixClock(placedAt)

	order, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.NoError(s.T(), err)

	require.Equal(s.T(), models.OrderStatusPending, order.Status)
	require.True(s.T(), decimal.NewFromInt(250).Equal(order.TotalAmount))
	require.True(s.T(), placedAt.Equal(order.OrderDate))
	require.Equal(s.T(), checkout.ShippingAddress, order.BillingAddress)
	require.Equal(s.T(), models.PaymentStatusPending, order.PaymentStatus)
	_, err = uuid.Parse(order.TransactionID)
	require.NoError(s.T(), err)

	require.Len(s.T(), order.Items, 2)
	require.Equal(s.T(), "Shirt", order.Items[0].ProductName)
	require.Equal(s.T(), "Shirt-0", order.Items[0].VariantSKU)
	require.True(s.T(), decimal.NewFromInt(100).Equal(order.Items[0].UnitPrice))
	require.True(s.T(), decimal.NewFromInt(50).Equal(order.Items[1].UnitPrice))

	var payment models.Payment
	require.NoError(s.T(), s.db.Where("order_id = ?", order.ID).First(&payment).Error)
	require.True(s.T(), decimal.NewFromInt(250).Equal(payment.Amount))
	require.Equal(s.T(), "Card", payment.PaymentMethod)
	require.Equal(s.T(), models.MockPaymentGateway, payment.PaymentGateway)

	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cart.Items)
	require.EqualValues(s.T(), 0, s.count(&models.CartItem{}))
}

func (s *ServiceTestSuite) TestOrderPricesStayFrozen() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)

	order, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]any{"base_price": decimal.NewFromInt(999), "name": "Renamed"}).Error)

	got, err := s.orders.GetOrder(s.ctx, order.ID, s.user.ID)
	require.NoError(s.T(), err)
	require.True(s.T(), decimal.NewFromInt(100).Equal(got.TotalAmount))
	require.True(s.T(), decimal.NewFromInt(100).Equal(got.Items[0].UnitPrice))
	require.Equal(s.T(), "Shirt", got.Items[0].ProductName)
}

func (s *ServiceTestSuite) TestCreateOrderBillingDefaultsToShipping() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)

	order, err := s.orders.CreateOrder(s.ctx, s.user.ID, dto.CreateOrderRequest{PaymentMethod: "COD", ShippingAddress: "x"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "x", order.BillingAddress)
}

func (s *ServiceTestSuite) TestCreateOrderRequiresPaymentMethod() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)

	for _, method := range []string{"", "   "} {
		_, err := s.orders.CreateOrder(s.ctx, s.user.ID, dto.CreateOrderRequest{PaymentMethod: method, ShippingAddress: "x", BillingAddress: "y"})
		var verr *ValidationError
		require.ErrorAs(s.T(), err, &verr)
		require.Equal(s.T(), "Payment method is required.", verr.Fields["paymentMethod"])
	}

	require.EqualValues(s.T(), 0, s.count(&models.Order{}))
	require.EqualValues(s.T(), 0, s.count(&models.Payment{}))
	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)
}

func (s *ServiceTestSuite) TestCreateOrderRequiresShippingAddress() {
	_, err := s.orders.CreateOrder(s.ctx, s.user.ID, dto.CreateOrderRequest{PaymentMethod: "COD"})
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Contains(s.T(), verr.Fields, "shippingAddress")
}

func (s *ServiceTestSuite) TestCreateOrderWithEmptyCart() {
	_, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.ErrorIs(s.T(), err, ErrEmptyCart)

	_, err = s.carts.GetOrCreateCart(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	_, err = s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.ErrorIs(s.T(), err, ErrEmptyCart)
	require.NotErrorIs(s.T(), err, ErrOrderCreationFailed)

	require.EqualValues(s.T(), 0, s.count(&models.Order{}))
	require.EqualValues(s.T(), 0, s.count(&models.Payment{}))
}

func (s *ServiceTestSuite) TestCreateOrderWithOnlyUnresolvableLines() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)
	require.NoError(s.T(), s.products.DeleteVariant(s.ctx, product.ID, product.Variants[0].ID))

	_, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.ErrorIs(s.T(), err, ErrEmptyCart)
	require.EqualValues(s.T(), 0, s.count(&models.Order{}))
}

func (s *ServiceTestSuite) TestCreateOrderRollsBackOnPaymentFailure() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0", "10")
	s.addToCart(s.user.ID, product.Variants[0].ID, 2)
	s.addToCart(s.user.ID, product.Variants[1].ID, 1)

	simulated := errors.New("simulated payment insert failure")
	err := s.db.Callback().Create().Before("gorm:create").Register("test:fail_payments", func(tx *gorm.DB) {
		if tx.Statement.Table == "payments" {
			_ = tx.AddError(simulated)
		}
	})
	require.NoError(s.T(), err)

	_, err = s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.ErrorIs(s.T(), err, ErrOrderCreationFailed)
	require.ErrorIs(s.T(), err, simulated)

	require.EqualValues(s.T(), 0, s.count(&models.Order{}))
	require.EqualValues(s.T(), 0, s.count(&models.OrderItem{}))
	require.EqualValues(s.T(), 0, s.count(&models.Payment{}))

	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 2)
	require.Equal(s.T(), 2, cart.Items[0].Quantity)
}

func (s *ServiceTestSuite) TestOrdersAreVisibleToOwnerOnly() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	other := storetest.CreateUser(s.T(), s.db, "other@test.io")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)

	order, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
	require.NoError(s.T(), err)

	_, err = s.orders.GetOrder(s.ctx, order.ID, other.ID)
	require.ErrorIs(s.T(), err, ErrNotFound)

	orders, err := s.orders.ListOrders(s.ctx, other.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), orders)
}

func (s *ServiceTestSuite) TestListOrdersNewestFirst() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []uint
	for i := 0; i < 3; i++ {
		s.fixClock(base.Add(time.Duration(i) * time.Hour))
		s.addToCart(s.user.ID, product.Variants[0].ID, i+1)
		order, err := s.orders.CreateOrder(s.ctx, s.user.ID, checkout)
		require.NoError(s.T(), err)
		ids = append(ids, order.ID)
	}

	orders, err := s.orders.ListOrders(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 3)
	require.Equal(s.T(), []uint{ids[2], ids[1], ids[0]}, []uint{orders[0].ID, orders[1].ID, orders[2].ID})
	require.Equal(s.T(), 3, orders[0].Items[0].Quantity)
}
