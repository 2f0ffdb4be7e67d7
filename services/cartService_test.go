package services

import (
	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store/storetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestGetOrCreateCartIsIdempotent() {
	first, err := s.carts.GetOrCreateCart(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	second, err := s.carts.GetOrCreateCart(s.ctx, s.user.ID)
	require.NoError(s.T(), err)

	require.Equal(s.T(), first.ID, second.ID)
	require.EqualValues(s.T(), 1, s.count(&models.Cart{}))
}

func (s *ServiceTestSuite) TestAddSameVariantTwiceMergesLine() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	variantID := product.Variants[0].ID

	s.addToCart(s.user.ID, variantID, 2)
	cart := s.addToCart(s.user.ID, variantID, 3)

	require.Len(s.T(), cart.Items, 1)
	require.Equal(s.T(), 5, cart.Items[0].Quantity)
	require.True(s.T(), decimal.NewFromInt(500).Equal(cart.TotalAmount))
	require.EqualValues(s.T(), 1, s.count(&models.CartItem{}))
}

func (s *ServiceTestSuite) TestAddItemRejectsBadInput() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")

	_, err := s.carts.AddItem(s.ctx, s.user.ID, dto.AddToCartRequest{ProductVariantID: product.Variants[0].ID, Quantity: 0})
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Contains(s.T(), verr.Fields, "quantity")

	_, err = s.carts.AddItem(s.ctx, s.user.ID, dto.AddToCartRequest{ProductVariantID: 999, Quantity: 1})
	require.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ServiceTestSuite) TestViewPricesLinesAndTotal() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0", "-50")

	s.addToCart(s.user.ID, product.Variants[0].ID, 2)
	s.addToCart(s.user.ID, product.Variants[1].ID, 1)

	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.user.ID, cart.UserID)
	require.Len(s.T(), cart.Items, 2)

	require.True(s.T(), decimal.NewFromInt(100).Equal(cart.Items[0].Price))
	require.True(s.T(), decimal.NewFromInt(50).Equal(cart.Items[1].Price))
	require.True(s.T(), decimal.NewFromInt(250).Equal(cart.TotalAmount))
	require.Equal(s.T(), "Shirt-1", cart.Items[1].VariantSKU)
	require.Equal(s.T(), product.ID, cart.Items[1].ProductID)
	require.NotEmpty(s.T(), cart.Items[0].ImageURL)
}

func (s *ServiceTestSuite) TestViewOmitsDeletedVariant() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0", "20")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)
	s.addToCart(s.user.ID, product.Variants[1].ID, 1)

	require.NoError(s.T(), s.products.DeleteVariant(s.ctx, product.ID, product.Variants[1].ID))

	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)
	require.Equal(s.T(), product.Variants[0].ID, cart.Items[0].ProductVariantID)
	require.True(s.T(), decimal.NewFromInt(100).Equal(cart.TotalAmount))
}

func (s *ServiceTestSuite) TestUpdateAndRemoveIgnoreForeignLines() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0")
	other := storetest.CreateUser(s.T(), s.db, "other@test.io")

	cart := s.addToCart(s.user.ID, product.Variants[0].ID, 1)
	itemID := cart.Items[0].ID

	_, err := s.carts.UpdateItemQuantity(s.ctx, other.ID, dto.UpdateCartItemRequest{CartItemID: itemID, Quantity: 7})
	require.NoError(s.T(), err)
	_, err = s.carts.RemoveItem(s.ctx, other.ID, itemID)
	require.NoError(s.T(), err)

	cart, err = s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)
	require.Equal(s.T(), 1, cart.Items[0].Quantity)

	cart, err = s.carts.UpdateItemQuantity(s.ctx, s.user.ID, dto.UpdateCartItemRequest{CartItemID: itemID, Quantity: 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, cart.Items[0].Quantity)

	cart, err = s.carts.RemoveItem(s.ctx, s.user.ID, itemID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cart.Items)
}

func (s *ServiceTestSuite) TestClearEmptiesCart() {
	product := storetest.CreateProduct(s.T(), s.db, s.category.ID, "Shirt", "100", "0", "5")
	s.addToCart(s.user.ID, product.Variants[0].ID, 1)
	s.addToCart(s.user.ID, product.Variants[1].ID, 2)

	require.NoError(s.T(), s.carts.Clear(s.ctx, s.user.ID))

	cart, err := s.carts.View(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cart.Items)
	require.True(s.T(), cart.TotalAmount.IsZero())
}
