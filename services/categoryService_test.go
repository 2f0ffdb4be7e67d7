package services

import (
	"github.com/Kariqs/vastra-api/dto"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestCategoryLifecycle() {
	categories := NewCategoryService(s.store)

	created, err := categories.Create(s.ctx, dto.CategoryRequest{Name: "Shoes", Description: "Footwear"})
	require.NoError(s.T(), err)
	require.NotZero(s.T(), created.ID)

	updated, err := categories.Update(s.ctx, created.ID, dto.CategoryRequest{Name: "Sneakers"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Sneakers", updated.Name)

	all, err := categories.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 2)

	require.NoError(s.T(), categories.Delete(s.ctx, created.ID))
	require.NoError(s.T(), categories.Delete(s.ctx, created.ID))
	_, err = categories.Get(s.ctx, created.ID)
	require.ErrorIs(s.T(), err, ErrNotFound)

	_, err = categories.Update(s.ctx, created.ID, dto.CategoryRequest{Name: "Boots"})
	require.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ServiceTestSuite) TestCategoryNameRequired() {
	categories := NewCategoryService(s.store)

	_, err := categories.Create(s.ctx, dto.CategoryRequest{Name: "  "})
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Contains(s.T(), verr.Fields, "name")
}
