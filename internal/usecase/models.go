package usecase

import (
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductFilter — условия выборки продуктов.
// Заданные поля объединяются по И; пустой фильтр возвращает все записи.
type ProductFilter struct {
	Name      *string
	Available *bool
	Category  *domain.Category
	Price     *decimal.Decimal
}

// IsEmpty сообщает, заданы ли какие-либо условия выборки.
func (f ProductFilter) IsEmpty() bool {
	return f.Name == nil && f.Available == nil && f.Category == nil && f.Price == nil
}
