package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/memory"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(name string, price string, available bool, category domain.Category) *domain.Product {
	return domain.NewProduct(name, "", decimal.RequireFromString(price), available, category)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		created, err := repo.Create(ctx, newProduct(fmt.Sprintf("product %d", i), "1.00", true, domain.CategoryTools))
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.False(t, seen[created.ID], "id %d assigned twice", created.ID)
		seen[created.ID] = true
	}
}

func TestGetByIDAfterCreate(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, newProduct("Fedora", "12.50", true, domain.CategoryCloths))
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Fedora", found.Name)
	assert.True(t, decimal.RequireFromString("12.50").Equal(found.Price))
	assert.True(t, found.Available)
	assert.Equal(t, domain.CategoryCloths, found.Category)
}

func TestGetByIDAbsent(t *testing.T) {
	repo := memory.NewProductRepo()

	_, err := repo.GetByID(context.Background(), 0)
	assert.True(t, errors.Is(err, e.ErrProductNotFound))
}

func TestUpdateReportsAffectedRows(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, newProduct("Fedora", "12.50", true, domain.CategoryCloths))
	require.NoError(t, err)

	created.Description = "my new description"
	affected, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "my new description", found.Description)

	absent := newProduct("ghost", "1.00", false, domain.CategoryFood)
	absent.ID = 9000
	affected, err = repo.Update(ctx, absent)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, newProduct("Fedora", "12.50", true, domain.CategoryCloths))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	// повторное удаление не ошибка на уровне репозитория
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, e.ErrProductNotFound))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newProduct(fmt.Sprintf("product %d", i), "1.00", true, domain.CategoryTools))
		require.NoError(t, err)
	}

	products, err := repo.List(ctx, usecase.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 5)
	for i, product := range products {
		assert.Equal(t, fmt.Sprintf("product %d", i), product.Name)
	}
}

func TestListFilterByAvailabilityPartition(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	available := 0
	for i := 0; i < 10; i++ {
		flag := i%3 == 0
		if flag {
			available++
		}
		_, err := repo.Create(ctx, newProduct(fmt.Sprintf("product %d", i), "1.00", flag, domain.CategoryFood))
		require.NoError(t, err)
	}

	trueFlag, falseFlag := true, false

	availableProducts, err := repo.List(ctx, usecase.ProductFilter{Available: &trueFlag})
	require.NoError(t, err)
	unavailableProducts, err := repo.List(ctx, usecase.ProductFilter{Available: &falseFlag})
	require.NoError(t, err)

	assert.Len(t, availableProducts, available)
	// счетчики по доступности в сумме дают общее количество записей
	assert.Equal(t, 10, len(availableProducts)+len(unavailableProducts))
}

func TestListFilterByPriceDecimalEquality(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, newProduct("Fedora", "12.50", true, domain.CategoryCloths))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newProduct("Hammer", "12.51", true, domain.CategoryTools))
	require.NoError(t, err)

	// десятичное равенство, не строковое: 12.5 == 12.50
	price := decimal.RequireFromString("12.5")
	products, err := repo.List(ctx, usecase.ProductFilter{Price: &price})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Fedora", products[0].Name)
}

func TestListCombinedFilters(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, newProduct("Fedora", "12.50", true, domain.CategoryCloths))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newProduct("Fedora", "12.50", false, domain.CategoryCloths))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newProduct("Hammer", "9.99", true, domain.CategoryTools))
	require.NoError(t, err)

	name := "Fedora"
	trueFlag := true
	category := domain.CategoryCloths

	products, err := repo.List(ctx, usecase.ProductFilter{
		Name:      &name,
		Available: &trueFlag,
		Category:  &category,
	})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.True(t, products[0].Available)
}
