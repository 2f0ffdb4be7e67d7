package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store is the typed data-access surface used by the services. Every method is
// bound to the context it is called with; Transaction hands fn a Store whose
// calls all run on one database transaction.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	UserStore
	AddressStore
	CategoryStore
	ProductStore
	CartStore
	OrderStore
}

// GormStore implements Store on top of gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB exposes the underlying handle, used by startup code and tests.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var _ Store = (*GormStore)(nil)
