package converter

import (
	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) (*domain.Product, error)
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Available:   entity.Available,
		Category:    entity.Category.String(),
	}
}

// ToEntity восстанавливает сущность из модели.
// Имя категории в хранилище обязано быть членом перечисления.
func (c *ProductConverterImpl) ToEntity(model *ProductModel) (*domain.Product, error) {
	category, err := domain.ParseCategory(model.Category)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Available:   model.Available,
		Category:    category,
	}, nil
}
