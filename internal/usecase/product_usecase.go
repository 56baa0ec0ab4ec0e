package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// ProductUseCase реализует бизнес-логику каталога продуктов.
type ProductUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create валидирует продукт и сохраняет его в хранилище.
// Идентификатор во входных данных игнорируется: его назначает хранилище.
func (p *ProductUseCase) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = 0

	if err := product.Validate(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Infof("product created: id=%d name=%s", created.ID, created.Name)
	return created, nil
}

// Get возвращает продукт по идентификатору.
func (p *ProductUseCase) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// Update перезаписывает изменяемые поля существующего продукта.
// Продукт без идентификатора — ошибка валидации, до обращения к хранилищу.
// Ноль затронутых строк трактуется как отсутствие записи.
func (p *ProductUseCase) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductIDRequired)
	}

	if err := product.Validate(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	affected, err := p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if affected == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	p.logger.Infof("product updated: id=%d", product.ID)
	return product, nil
}

// Delete удаляет продукт по идентификатору.
// Отсутствующая запись — e.ErrProductNotFound; само удаление в хранилище идемпотентно.
func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := p.productRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Infof("product deleted: id=%d", id)
	return nil
}

// List возвращает продукты, удовлетворяющие всем заданным фильтрам.
func (p *ProductUseCase) List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	products, err := p.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}
