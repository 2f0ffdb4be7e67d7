package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
)

const maxProductNameLength = 100

type ProductService struct {
	store store.Store
}

func NewProductService(st store.Store) *ProductService {
	return &ProductService{store: st}
}

func validateProduct(req dto.CreateProductRequest, withVariants bool) *ValidationError {
	fields := map[string]string{}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		fields["name"] = "Product name is required."
	case utf8.RuneCountInString(name) > maxProductNameLength:
		fields["name"] = "Product name must not exceed 100 characters."
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Description is required."
	}
	if req.BasePrice.IsNegative() {
		fields["basePrice"] = "Base price must be greater than or equal to 0."
	}
	if req.CategoryID == 0 {
		fields["categoryId"] = "Valid CategoryId is required."
	}

	if withVariants {
		for i, url := range req.ImageURLs {
			if strings.TrimSpace(url) == "" {
				fields[fmt.Sprintf("imageUrls[%d]", i)] = "Image URL must not be blank."
			}
		}
		for i, v := range req.Variants {
			prefix := fmt.Sprintf("variants[%d].", i)
			if strings.TrimSpace(v.SKU) == "" {
				fields[prefix+"sku"] = "SKU is required."
			}
			if strings.TrimSpace(v.Size) == "" {
				fields[prefix+"size"] = "Size is required."
			}
			if strings.TrimSpace(v.Color) == "" {
				fields[prefix+"color"] = "Color is required."
			}
			if v.StockQuantity < 0 {
				fields[prefix+"stockQuantity"] = "Stock quantity cannot be negative."
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (s *ProductService) requireCategory(ctx context.Context, id uint) error {
	_, err := s.store.GetCategory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NewValidationError("categoryId", "Category does not exist.")
	}
	return err
}

// Create stores the product with its images and variants in one insert. The
// first image URL becomes the main image; blank URLs are rejected.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if verr := validateProduct(req, true); verr != nil {
		return dto.ProductResponse{}, verr
	}
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return dto.ProductResponse{}, err
	}

	product := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CategoryID:  req.CategoryID,
	}
	for i, url := range req.ImageURLs {
		product.Images = append(product.Images, models.ProductImage{
			ImageUrl:    strings.TrimSpace(url),
			IsMainImage: i == 0,
		})
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			SKU:             strings.TrimSpace(v.SKU),
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			StockQuantity:   v.StockQuantity,
			PriceAdjustment: v.PriceAdjustment,
		})
	}

	if err := s.store.CreateProduct(ctx, &product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("insert product: %w", err)
	}
	return s.Get(ctx, product.ID)
}

// List filters by case-insensitive name substring and category; both optional.
func (s *ProductService) List(ctx context.Context, search string, categoryID uint) ([]dto.ProductResponse, error) {
	products, err := s.store.ListProducts(ctx, store.ProductFilter{Search: search, CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	res := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, toProductResponse(&products[i]))
	}
	return res, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (dto.ProductResponse, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("product %d: %w", id, err)
	}
	return toProductResponse(product), nil
}

// Update rewrites the scalar fields. Images and variants in the request are ignored.
func (s *ProductService) Update(ctx context.Context, id uint, req dto.CreateProductRequest) error {
	if verr := validateProduct(req, false); verr != nil {
		return verr
	}

	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}
	if product.CategoryID != req.CategoryID {
		if err := s.requireCategory(ctx, req.CategoryID); err != nil {
			return err
		}
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Description = req.Description
	product.BasePrice = req.BasePrice
	product.CategoryID = req.CategoryID
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

// Delete is idempotent.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// DeleteVariant removes one variant of the product. Cart lines pointing at it
// drop out of cart views.
func (s *ProductService) DeleteVariant(ctx context.Context, productID, variantID uint) error {
	deleted, err := s.store.DeleteVariant(ctx, productID, variantID)
	if err != nil {
		return fmt.Errorf("delete variant %d: %w", variantID, err)
	}
	if !deleted {
		return fmt.Errorf("variant %d of product %d: %w", variantID, productID, ErrNotFound)
	}
	return nil
}

// AddImages attaches already uploaded image URLs. The first becomes the main
// image only when the product has none.
func (s *ProductService) AddImages(ctx context.Context, productID uint, urls []string) (dto.ProductResponse, error) {
	if len(urls) == 0 {
		return dto.ProductResponse{}, NewValidationError("images", "At least one image is required.")
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetProduct(ctx, productID); err != nil {
			return fmt.Errorf("product %d: %w", productID, err)
		}
		hasMain, err := tx.HasMainImage(ctx, productID)
		if err != nil {
			return fmt.Errorf("check main image: %w", err)
		}

		images := make([]models.ProductImage, 0, len(urls))
		for i, url := range urls {
			images = append(images, models.ProductImage{
				ProductID:   productID,
				ImageUrl:    url,
				IsMainImage: !hasMain && i == 0,
			})
		}
		return tx.AddProductImages(ctx, images)
	})
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return s.Get(ctx, productID)
}
