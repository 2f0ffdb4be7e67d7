package services

import (
	"strings"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Oxford Shirt",
		Description: "Button-down oxford",
		BasePrice:   decimal.NewFromInt(45),
		CategoryID:  s.category.ID,
		ImageURLs:   []string{"a", "b", "c"},
		Variants: []dto.CreateVariantRequest{
			{SKU: "OX-M", Size: "M", Color: "Blue", StockQuantity: 3},
			{SKU: "OX-L", Size: "L", Color: "Blue", StockQuantity: 0, PriceAdjustment: decimal.NewFromInt(5)},
		},
	}
}

func (s *ServiceTestSuite) TestCreateProductFirstImageIsMain() {
	product, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	require.True(s.T(), product.IsActive)
	require.NotNil(s.T(), product.Category)
	require.Equal(s.T(), "Shirts", product.Category.Name)
	require.Len(s.T(), product.Images, 3)
	for _, img := range product.Images {
		require.Equal(s.T(), img.ImageURL == "a", img.IsMainImage, img.ImageURL)
	}
	require.Len(s.T(), product.Variants, 2)
	require.True(s.T(), decimal.NewFromInt(50).Equal(product.Variants[1].Price))
}

func (s *ServiceTestSuite) TestCreateProductValidation() {
	req := s.validProduct()
	req.Name = strings.Repeat("x", 101)
	req.Description = " "
	req.BasePrice = decimal.NewFromInt(-1)
	req.Variants[1].SKU = ""
	req.Variants[1].StockQuantity = -1

	_, err := s.products.Create(s.ctx, req)
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Contains(s.T(), verr.Fields, "name")
	require.Contains(s.T(), verr.Fields, "description")
	require.Contains(s.T(), verr.Fields, "basePrice")
	require.Contains(s.T(), verr.Fields, "variants[1].sku")
	require.Contains(s.T(), verr.Fields, "variants[1].stockQuantity")
	require.NotContains(s.T(), verr.Fields, "variants[0].sku")
}

func (s *ServiceTestSuite) TestCreateProductRejectsBlankImageURL() {
	req := s.validProduct()
	req.ImageURLs = []string{" ", "b"}

	_, err := s.products.Create(s.ctx, req)
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Equal(s.T(), "Image URL must not be blank.", verr.Fields["imageUrls[0]"])
	require.NotContains(s.T(), verr.Fields, "imageUrls[1]")

	products, err := s.products.List(s.ctx, "", 0)
	require.NoError(s.T(), err)
	require.Empty(s.T(), products)
}

func (s *ServiceTestSuite) TestCreateProductUnknownCategory() {
	req := s.validProduct()
	req.CategoryID = 999

	_, err := s.products.Create(s.ctx, req)
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Contains(s.T(), verr.Fields, "categoryId")
}

func (s *ServiceTestSuite) TestCreateProductInactive() {
	req := s.validProduct()
	inactive := false
	req.IsActive = &inactive

	product, err := s.products.Create(s.ctx, req)
	require.NoError(s.T(), err)
	require.False(s.T(), product.IsActive)
}

func (s *ServiceTestSuite) TestUpdateProductScalarsOnly() {
	created, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	req := s.validProduct()
	req.Name = "Oxford Shirt II"
	req.BasePrice = decimal.NewFromInt(60)
	req.ImageURLs = nil
	req.Variants = nil
	require.NoError(s.T(), s.products.Update(s.ctx, created.ID, req))

	got, err := s.products.Get(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Oxford Shirt II", got.Name)
	require.True(s.T(), decimal.NewFromInt(60).Equal(got.BasePrice))
	require.Len(s.T(), got.Images, 3)
	require.Len(s.T(), got.Variants, 2)

	require.ErrorIs(s.T(), s.products.Update(s.ctx, 999, req), ErrNotFound)
}

func (s *ServiceTestSuite) TestListProductsSearch() {
	_, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	found, err := s.products.List(s.ctx, "oxford", 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)

	found, err = s.products.List(s.ctx, "oxford", s.category.ID+1)
	require.NoError(s.T(), err)
	require.Empty(s.T(), found)
}

func (s *ServiceTestSuite) TestDeleteProductIsIdempotent() {
	created, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.products.Delete(s.ctx, created.ID))
	require.NoError(s.T(), s.products.Delete(s.ctx, created.ID))

	_, err = s.products.Get(s.ctx, created.ID)
	require.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ServiceTestSuite) TestDeleteVariantOfOtherProduct() {
	first, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)
	second, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	err = s.products.DeleteVariant(s.ctx, second.ID, first.Variants[0].ID)
	require.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ServiceTestSuite) TestAddImagesKeepsExistingMain() {
	created, err := s.products.Create(s.ctx, s.validProduct())
	require.NoError(s.T(), err)

	product, err := s.products.AddImages(s.ctx, created.ID, []string{"d", "e"})
	require.NoError(s.T(), err)
	require.Len(s.T(), product.Images, 5)

	mains := 0
	for _, img := range product.Images {
		if img.IsMainImage {
			mains++
			require.Equal(s.T(), "a", img.ImageURL)
		}
	}
	require.Equal(s.T(), 1, mains)
}

func (s *ServiceTestSuite) TestAddImagesPromotesFirstWhenNoMain() {
	req := s.validProduct()
	req.ImageURLs = nil
	created, err := s.products.Create(s.ctx, req)
	require.NoError(s.T(), err)

	product, err := s.products.AddImages(s.ctx, created.ID, []string{"d", "e"})
	require.NoError(s.T(), err)
	require.Len(s.T(), product.Images, 2)
	require.True(s.T(), product.Images[0].IsMainImage)
	require.False(s.T(), product.Images[1].IsMainImage)

	_, err = s.products.AddImages(s.ctx, 999, []string{"x"})
	require.ErrorIs(s.T(), err, ErrNotFound)
}
