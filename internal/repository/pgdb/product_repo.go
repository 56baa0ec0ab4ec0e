package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = "id, name, description, price, available, category"

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет новый продукт; идентификатор назначает последовательность таблицы.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, available, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns + `;
	`

	in := p.conv.ToModel(product)

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, in.Name, in.Description, in.Price, in.Available, in.Category).
		Scan(&model.ID, &model.Name, &model.Description, &model.Price, &model.Available, &model.Category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	entity, err := p.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return entity, nil
}

// Update перезаписывает изменяемые поля записи по идентификатору.
// Возвращает количество затронутых строк; ноль означает отсутствие записи.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, available = $5, category = $6
		WHERE id = $1;
	`

	in := p.conv.ToModel(product)

	tag, err := p.pool.Exec(ctx, query, in.ID, in.Name, in.Description, in.Price, in.Available, in.Category)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}

// Delete удаляет запись по идентификатору. Отсутствие записи не ошибка.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1;`

	if _, err := p.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetByID возвращает запись по идентификатору или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Description, &model.Price, &model.Available, &model.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	entity, err := p.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return entity, nil
}

// List возвращает записи, удовлетворяющие всем заданным условиям фильтра.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]*domain.Product, error) {
	query, args := buildListQuery(filter)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description, &model.Price, &model.Available, &model.Category); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		entity, err := p.conv.ToEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// buildListQuery собирает SELECT с условиями равенства по заданным полям фильтра.
// Условия объединяются по AND; порядок выдачи — порядок вставки (по id).
func buildListQuery(filter usecase.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	addCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Name != nil {
		addCond("name", *filter.Name)
	}
	if filter.Available != nil {
		addCond("available", *filter.Available)
	}
	if filter.Category != nil {
		addCond("category", filter.Category.String())
	}
	if filter.Price != nil {
		addCond("price", *filter.Price)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id;`

	return query, args
}
