package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
)

type CartService struct {
	store store.Store
}

func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// GetOrCreateCart returns the user's cart, creating an empty one on first use.
func (s *CartService) GetOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	return getOrCreateCart(ctx, s.store, userID)
}

func getOrCreateCart(ctx context.Context, st store.CartStore, userID uint) (*models.Cart, error) {
	cart, err := st.GetCartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart = &models.Cart{UserID: userID}
	if err := st.CreateCart(ctx, cart); err != nil {
		// A concurrent request won the unique index on user_id.
		existing, getErr := st.GetCartByUser(ctx, userID)
		if getErr != nil {
			return nil, fmt.Errorf("create cart: %w", err)
		}
		return existing, nil
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID uint, req dto.AddToCartRequest) (dto.CartResponse, error) {
	if req.Quantity < 1 {
		return dto.CartResponse{}, NewValidationError("quantity", "Quantity must be greater than 0.")
	}
	if _, err := s.store.GetVariant(ctx, req.ProductVariantID); err != nil {
		return dto.CartResponse{}, fmt.Errorf("product variant %d: %w", req.ProductVariantID, err)
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return dto.CartResponse{}, err
	}

	if err := s.addQuantity(ctx, cart.ID, req.ProductVariantID, req.Quantity); err != nil {
		return dto.CartResponse{}, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) addQuantity(ctx context.Context, cartID, variantID uint, quantity int) error {
	item, err := s.store.GetCartItemByVariant(ctx, cartID, variantID)
	switch {
	case err == nil:
		return s.store.IncrementCartItem(ctx, item.ID, quantity)
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("load cart item: %w", err)
	}

	createErr := s.store.CreateCartItem(ctx, &models.CartItem{
		CartID:           cartID,
		ProductVariantID: variantID,
		Quantity:         quantity,
	})
	if createErr == nil {
		return nil
	}

	// Lost an insert race for the same variant; fold into the winner's line.
	item, err = s.store.GetCartItemByVariant(ctx, cartID, variantID)
	if err != nil {
		return fmt.Errorf("create cart item: %w", createErr)
	}
	return s.store.IncrementCartItem(ctx, item.ID, quantity)
}

// UpdateItemQuantity sets the quantity of a line in the user's cart. Lines in
// other carts are ignored.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID uint, req dto.UpdateCartItemRequest) (dto.CartResponse, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return dto.CartResponse{}, err
	}
	if _, err := s.store.UpdateCartItemQuantity(ctx, cart.ID, req.CartItemID, req.Quantity); err != nil {
		return dto.CartResponse{}, fmt.Errorf("update cart item: %w", err)
	}
	return s.view(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID uint) (dto.CartResponse, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return dto.CartResponse{}, err
	}
	if _, err := s.store.DeleteCartItem(ctx, cart.ID, cartItemID); err != nil {
		return dto.CartResponse{}, fmt.Errorf("remove cart item: %w", err)
	}
	return s.view(ctx, cart)
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.store.ClearCart(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *CartService) View(ctx context.Context, userID uint) (dto.CartResponse, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return dto.CartResponse{}, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) view(ctx context.Context, cart *models.Cart) (dto.CartResponse, error) {
	lines, err := s.store.CartLines(ctx, cart.ID)
	if err != nil {
		return dto.CartResponse{}, fmt.Errorf("load cart lines: %w", err)
	}
	return toCartResponse(cart, lines), nil
}
