package storetest

import (
	"fmt"
	"testing"

	"github.com/Kariqs/vastra-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateUser(t testing.TB, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, FirstName: "Test", LastName: "User", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateProduct inserts an active product with one main image and a variant
// per price adjustment.
func CreateProduct(t testing.TB, db *gorm.DB, categoryID uint, name, basePrice string, adjustments ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: name + " description",
		BasePrice:   decimal.RequireFromString(basePrice),
		IsActive:    true,
		CategoryID:  categoryID,
		Images: []models.ProductImage{
			{ImageUrl: "https://img.test/" + name + ".jpg", IsMainImage: true},
		},
	}
	for i, adj := range adjustments {
		product.Variants = append(product.Variants, models.ProductVariant{
			SKU:             fmt.Sprintf("%s-%d", name, i),
			Size:            "M",
			Color:           "Black",
			StockQuantity:   10,
			PriceAdjustment: decimal.RequireFromString(adj),
		})
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
