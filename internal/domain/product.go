package domain

import (
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Product описывает продукт каталога.
// ID равен нулю, пока запись не сохранена в хранилище.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // Цена хранится как decimal, без float64
	Available   bool
	Category    Category
}

func NewProduct(name, description string, price decimal.Decimal, available bool, category Category) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Available:   available,
		Category:    category,
	}
}

// Validate проверяет инварианты продукта перед записью в хранилище.
func (p *Product) Validate() error {
	if p.Name == "" {
		return e.ErrProductNameRequired
	}

	if !p.Category.IsValid() {
		return e.ErrInvalidCategory
	}

	return nil
}
