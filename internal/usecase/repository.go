package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type ProductRepository interface {
	// Create сохраняет новый продукт и возвращает его с назначенным идентификатором.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update перезаписывает изменяемые поля записи по идентификатору
	// и возвращает количество затронутых строк.
	Update(ctx context.Context, product *domain.Product) (int64, error)
	// Delete удаляет запись по идентификатору; отсутствие записи не ошибка.
	Delete(ctx context.Context, id int64) error
	// GetByID возвращает запись или e.ErrProductNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// List возвращает записи, удовлетворяющие всем заданным фильтрам.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}
