package pgdb

import (
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQueryNoFilter(t *testing.T) {
	query, args := buildListQuery(usecase.ProductFilter{})

	assert.Equal(t, `SELECT id, name, description, price, available, category FROM products ORDER BY id;`, query)
	assert.Empty(t, args)
}

func TestBuildListQuerySingleFilter(t *testing.T) {
	name := "Fedora"
	query, args := buildListQuery(usecase.ProductFilter{Name: &name})

	assert.Contains(t, query, "WHERE name = $1")
	require.Len(t, args, 1)
	assert.Equal(t, "Fedora", args[0])
}

func TestBuildListQueryCombinesWithAnd(t *testing.T) {
	name := "Fedora"
	available := true
	category := domain.CategoryCloths
	price := decimal.RequireFromString("12.50")

	query, args := buildListQuery(usecase.ProductFilter{
		Name:      &name,
		Available: &available,
		Category:  &category,
		Price:     &price,
	})

	assert.Contains(t, query, "name = $1 AND available = $2 AND category = $3 AND price = $4")
	require.Len(t, args, 4)
	assert.Equal(t, "Fedora", args[0])
	assert.Equal(t, true, args[1])
	// категория уходит в запрос каноническим именем
	assert.Equal(t, "CLOTHS", args[2])
	assert.Equal(t, price, args[3])
}
