package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
)

type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (dto.ProfileResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("user %d: %w", userID, err)
	}
	addresses, err := s.ListAddresses(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	return dto.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		Addresses: addresses,
	}, nil
}

func validateAddress(req dto.AddressRequest) error {
	fields := map[string]string{}
	required := []struct{ field, value, label string }{
		{"street", req.Street, "Street"},
		{"city", req.City, "City"},
		{"state", req.State, "State"},
		{"zipCode", req.ZipCode, "ZipCode"},
		{"country", req.Country, "Country"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields[r.field] = r.label + " is required."
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *UserService) AddAddress(ctx context.Context, userID uint, req dto.AddressRequest) (dto.AddressResponse, error) {
	if err := validateAddress(req); err != nil {
		return dto.AddressResponse{}, err
	}

	addressType := strings.TrimSpace(req.AddressType)
	if addressType == "" {
		addressType = models.DefaultAddressType
	}
	address := models.Address{
		UserID:      userID,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
		AddressType: addressType,
	}
	if err := s.store.CreateAddress(ctx, &address); err != nil {
		return dto.AddressResponse{}, fmt.Errorf("insert address: %w", err)
	}
	return toAddressResponse(&address), nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID uint) ([]dto.AddressResponse, error) {
	addresses, err := s.store.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	res := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		res = append(res, toAddressResponse(&addresses[i]))
	}
	return res, nil
}

// GetAddress returns ErrNotFound for addresses owned by someone else.
func (s *UserService) GetAddress(ctx context.Context, userID, addressID uint) (dto.AddressResponse, error) {
	address, err := s.store.GetAddressForUser(ctx, addressID, userID)
	if err != nil {
		return dto.AddressResponse{}, fmt.Errorf("address %d: %w", addressID, err)
	}
	return toAddressResponse(address), nil
}

func (s *UserService) RemoveAddress(ctx context.Context, userID, addressID uint) error {
	deleted, err := s.store.DeleteAddressForUser(ctx, addressID, userID)
	if err != nil {
		return fmt.Errorf("delete address %d: %w", addressID, err)
	}
	if !deleted {
		return fmt.Errorf("address %d: %w", addressID, ErrNotFound)
	}
	return nil
}
