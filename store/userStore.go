package store

import (
	"context"

	"github.com/Kariqs/vastra-api/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AddressStore interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	ListAddresses(ctx context.Context, userID uint) ([]models.Address, error)
	GetAddressForUser(ctx context.Context, id, userID uint) (*models.Address, error)
	DeleteAddressForUser(ctx context.Context, id, userID uint) (bool, error)
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.conn(ctx).Create(user).Error
}

func (s *GormStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateAddress(ctx context.Context, address *models.Address) error {
	return s.conn(ctx).Create(address).Error
}

func (s *GormStore) ListAddresses(ctx context.Context, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := s.conn(ctx).Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	return addresses, err
}

func (s *GormStore) GetAddressForUser(ctx context.Context, id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := s.conn(ctx).Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

// DeleteAddressForUser reports whether a row owned by userID was removed.
func (s *GormStore) DeleteAddressForUser(ctx context.Context, id, userID uint) (bool, error) {
	result := s.conn(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return result.RowsAffected > 0, result.Error
}
