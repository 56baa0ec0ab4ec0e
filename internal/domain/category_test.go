package domain_test

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, category := range domain.Categories() {
		parsed, err := domain.ParseCategory(category.String())
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}
}

func TestParseCategoryUnknownName(t *testing.T) {
	for _, name := range []string{"aaa", "cloths", "Cloths", "", "FOOD "} {
		_, err := domain.ParseCategory(name)
		assert.True(t, errors.Is(err, e.ErrInvalidCategory), "name %q must be rejected", name)
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "CLOTHS", domain.CategoryCloths.String())
	assert.Equal(t, "UNKNOWN", domain.CategoryUnknown.String())

	// значение вне перечисления печатается как UNKNOWN
	assert.Equal(t, "UNKNOWN", domain.Category(42).String())
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range domain.Categories() {
		assert.True(t, category.IsValid())
	}
	assert.False(t, domain.Category(42).IsValid())
	assert.False(t, domain.Category(-1).IsValid())
}
