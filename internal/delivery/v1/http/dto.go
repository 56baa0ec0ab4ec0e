package http

import (
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// ProductDTO — представление продукта на проводе.
// Цена передается строкой, чтобы не терять десятичную точность;
// категория — каноническим именем члена перечисления.
// Обязательные ключи объявлены указателями: так отличим отсутствие от нулевого значения.
type ProductDTO struct {
	ID          *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description"`
	Price       *string `json:"price,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// FromDomain сериализует сущность в DTO. Идентификатор опускается, пока не назначен.
func FromDomain(product *domain.Product) *ProductDTO {
	dto := &ProductDTO{
		Name:        &product.Name,
		Description: &product.Description,
		Available:   &product.Available,
	}

	price := product.Price.String()
	dto.Price = &price

	category := product.Category.String()
	dto.Category = &category

	if product.ID != 0 {
		id := product.ID
		dto.ID = &id
	}

	return dto
}

// ToDomain — обратное преобразование с валидацией обязательных полей.
func (dto *ProductDTO) ToDomain() (*domain.Product, error) {
	if dto.Name == nil || *dto.Name == "" {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNameRequired)
	}

	if dto.Price == nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidPrice)
	}
	price, err := decimal.NewFromString(*dto.Price)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidPrice)
	}

	if dto.Available == nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidAvailable)
	}

	if dto.Category == nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidCategory)
	}
	category, err := domain.ParseCategory(*dto.Category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	product := domain.NewProduct(*dto.Name, description, price, *dto.Available, category)
	if dto.ID != nil {
		product.ID = *dto.ID
	}

	return product, nil
}

// FromDomainList сериализует выборку; пустая выборка — пустой массив, не null.
func FromDomainList(products []*domain.Product) []*ProductDTO {
	result := make([]*ProductDTO, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomain(product))
	}
	return result
}
