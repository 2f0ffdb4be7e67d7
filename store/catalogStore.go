package store

import (
	"context"
	"strings"

	"github.com/Kariqs/vastra-api/models"
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

// ProductFilter narrows ListProducts. Zero values disable a filter.
type ProductFilter struct {
	Search     string
	CategoryID uint
}

type ProductStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) (bool, error)
	GetVariant(ctx context.Context, id uint) (*models.ProductVariant, error)
	DeleteVariant(ctx context.Context, productID, variantID uint) (bool, error)
	HasMainImage(ctx context.Context, productID uint) (bool, error)
	AddProductImages(ctx context.Context, images []models.ProductImage) error
}

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.conn(ctx).Create(category).Error
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.conn(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (s *GormStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.conn(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *GormStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.conn(ctx).Save(category).Error
}

func (s *GormStore) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	result := s.conn(ctx).Delete(&models.Category{}, id)
	return result.RowsAffected > 0, result.Error
}

// CreateProduct inserts the product together with its Images and Variants.
func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.conn(ctx).Create(product).Error
}

func (s *GormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.conn(ctx).
		Preload("Category").
		Preload("Images", orderByID).
		Preload("Variants", orderByID).
		First(&product, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (s *GormStore) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := s.conn(ctx).
		Preload("Category").
		Preload("Images", orderByID).
		Preload("Variants", orderByID)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(models.FoldName(search)) + "%"
		query = query.Where("name_folded LIKE ? ESCAPE '!'", pattern)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var products []models.Product
	err := query.Order("id").Find(&products).Error
	return products, err
}

// UpdateProduct writes the scalar columns only; images and variants are left alone.
func (s *GormStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.NameFolded = models.FoldName(product.Name)
	return s.conn(ctx).Model(product).
		Select("name", "name_folded", "description", "base_price", "is_active", "category_id").
		Updates(product).Error
}

func (s *GormStore) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	result := s.conn(ctx).Delete(&models.Product{}, id)
	return result.RowsAffected > 0, result.Error
}

func (s *GormStore) GetVariant(ctx context.Context, id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := s.conn(ctx).First(&variant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &variant, nil
}

func (s *GormStore) DeleteVariant(ctx context.Context, productID, variantID uint) (bool, error) {
	result := s.conn(ctx).
		Where("id = ? AND product_id = ?", variantID, productID).
		Delete(&models.ProductVariant{})
	return result.RowsAffected > 0, result.Error
}

func (s *GormStore) HasMainImage(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.ProductImage{}).
		Where("product_id = ? AND is_main_image = ?", productID, true).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) AddProductImages(ctx context.Context, images []models.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return s.conn(ctx).Create(&images).Error
}
