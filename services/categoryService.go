package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
)

type CategoryService struct {
	store store.Store
}

func NewCategoryService(st store.Store) *CategoryService {
	return &CategoryService{store: st}
}

func validateCategory(req dto.CategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return NewValidationError("name", "Category name is required.")
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	if err := validateCategory(req); err != nil {
		return dto.CategoryResponse{}, err
	}

	category := models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageUrl:    req.ImageURL,
	}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("insert category: %w", err)
	}
	return toCategoryResponse(&category), nil
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	res := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, toCategoryResponse(&categories[i]))
	}
	return res, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (dto.CategoryResponse, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("category %d: %w", id, err)
	}
	return toCategoryResponse(category), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	if err := validateCategory(req); err != nil {
		return dto.CategoryResponse{}, err
	}

	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("category %d: %w", id, err)
	}
	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description
	category.ImageUrl = req.ImageURL
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return dto.CategoryResponse{}, fmt.Errorf("update category %d: %w", id, err)
	}
	return toCategoryResponse(category), nil
}

// Delete is idempotent: deleting a missing category succeeds.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
