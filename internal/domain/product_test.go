package domain_test

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := decimal.RequireFromString("12.50")

	product := domain.NewProduct("Fedora", "A red hat", price, true, domain.CategoryCloths)

	assert.EqualValues(t, 0, product.ID)
	assert.Equal(t, "Fedora", product.Name)
	assert.Equal(t, "A red hat", product.Description)
	assert.True(t, price.Equal(product.Price))
	assert.True(t, product.Available)
	assert.Equal(t, domain.CategoryCloths, product.Category)
}

func TestProductValidate(t *testing.T) {
	price := decimal.RequireFromString("12.50")

	t.Run("valid", func(t *testing.T) {
		product := domain.NewProduct("Fedora", "", price, true, domain.CategoryCloths)
		require.NoError(t, product.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		product := domain.NewProduct("", "A red hat", price, true, domain.CategoryCloths)
		err := product.Validate()
		assert.True(t, errors.Is(err, e.ErrProductNameRequired))
	})

	t.Run("category outside enumeration", func(t *testing.T) {
		product := domain.NewProduct("Fedora", "", price, true, domain.Category(42))
		err := product.Validate()
		assert.True(t, errors.Is(err, e.ErrInvalidCategory))
	})
}
