package http

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDTO() *ProductDTO {
	name := "Fedora"
	description := "A red hat"
	price := "12.50"
	available := true
	category := "CLOTHS"

	return &ProductDTO{
		Name:        &name,
		Description: &description,
		Price:       &price,
		Available:   &available,
		Category:    &category,
	}
}

func TestDTORoundTrip(t *testing.T) {
	product := &domain.Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    domain.CategoryCloths,
	}

	restored, err := FromDomain(product).ToDomain()
	require.NoError(t, err)

	assert.Equal(t, product.Name, restored.Name)
	assert.Equal(t, product.Description, restored.Description)
	assert.True(t, product.Price.Equal(restored.Price), "price must survive the text round-trip")
	assert.Equal(t, product.Available, restored.Available)
	assert.Equal(t, product.Category, restored.Category)
}

func TestFromDomainOmitsUnassignedID(t *testing.T) {
	product := domain.NewProduct("Fedora", "", decimal.RequireFromString("1.00"), true, domain.CategoryCloths)

	dto := FromDomain(product)
	assert.Nil(t, dto.ID)

	product.ID = 7
	dto = FromDomain(product)
	require.NotNil(t, dto.ID)
	assert.EqualValues(t, 7, *dto.ID)
}

func TestFromDomainRendersEnumNameAndPriceString(t *testing.T) {
	product := domain.NewProduct("Fedora", "", decimal.RequireFromString("12.50"), true, domain.CategoryCloths)

	dto := FromDomain(product)

	require.NotNil(t, dto.Category)
	assert.Equal(t, "CLOTHS", *dto.Category)
	require.NotNil(t, dto.Price)
	assert.True(t, decimal.RequireFromString("12.50").Equal(decimal.RequireFromString(*dto.Price)))
}

func TestToDomainMissingName(t *testing.T) {
	dto := validDTO()
	dto.Name = nil

	_, err := dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrProductNameRequired))

	empty := ""
	dto.Name = &empty
	_, err = dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrProductNameRequired))
}

func TestToDomainMissingOrInvalidPrice(t *testing.T) {
	dto := validDTO()
	dto.Price = nil
	_, err := dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrInvalidPrice))

	bad := "twelve"
	dto.Price = &bad
	_, err = dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrInvalidPrice))
}

func TestToDomainMissingAvailable(t *testing.T) {
	dto := validDTO()
	dto.Available = nil

	_, err := dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrInvalidAvailable))
}

func TestToDomainInvalidCategory(t *testing.T) {
	dto := validDTO()
	dto.Category = nil
	_, err := dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrInvalidCategory))

	bad := "aaa"
	dto.Category = &bad
	_, err = dto.ToDomain()
	assert.True(t, errors.Is(err, e.ErrInvalidCategory))
}

func TestToDomainDescriptionDefaultsToEmpty(t *testing.T) {
	dto := validDTO()
	dto.Description = nil

	product, err := dto.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "", product.Description)
}
