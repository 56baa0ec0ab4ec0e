package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// ProductRepo — потокобезопасный репозиторий продуктов в памяти.
// Используется в тестах и для локального запуска без PostgreSQL.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	order    []int64 // порядок вставки
	nextID   int64
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make(map[int64]domain.Product),
	}
}

func (p *ProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	stored := *product
	stored.ID = p.nextID

	p.products[stored.ID] = stored
	p.order = append(p.order, stored.ID)

	created := stored
	return &created, nil
}

func (p *ProductRepo) Update(_ context.Context, product *domain.Product) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.products[product.ID]; !ok {
		return 0, nil
	}

	p.products[product.ID] = *product
	return 1, nil
}

func (p *ProductRepo) Delete(_ context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.products[id]; !ok {
		return nil
	}

	delete(p.products, id)
	for i, storedID := range p.order {
		if storedID == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}

	return nil
}

func (p *ProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	product, ok := p.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	found := product
	return &found, nil
}

func (p *ProductRepo) List(_ context.Context, filter usecase.ProductFilter) ([]*domain.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*domain.Product, 0, len(p.order))
	for _, id := range p.order {
		product := p.products[id]
		if !matches(&product, filter) {
			continue
		}

		matched := product
		result = append(result, &matched)
	}

	return result, nil
}

func matches(product *domain.Product, filter usecase.ProductFilter) bool {
	if filter.Name != nil && product.Name != *filter.Name {
		return false
	}
	if filter.Available != nil && product.Available != *filter.Available {
		return false
	}
	if filter.Category != nil && product.Category != *filter.Category {
		return false
	}
	if filter.Price != nil && !product.Price.Equal(*filter.Price) {
		return false
	}

	return true
}
