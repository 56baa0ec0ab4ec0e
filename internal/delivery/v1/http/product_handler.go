package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание нового товара
//	@Description	Создает новый товар в каталоге
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductDTO	true	"Товар"
//	@Success		201		{object}	ProductDTO	"Успешное создание"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		415		{object}	ErrorResponse	"Неверный Content-Type"
//	@Header			201		{string}	Location	"Путь созданного ресурса"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	if err := ensureJSONContentType(r); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	dto, err := decodeProduct(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := dto.ToDomain()
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	created, err := p.productUsecase.Create(r.Context(), product)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/products/%d", created.ID))
	WriteSuccess(w, http.StatusCreated, FromDomain(created))
}

// getProduct
//
//	@Summary		Получение товара
//	@Description	Возвращает товар по его идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductDTO
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%d invalid product id: %s", http.StatusNotFound, chi.URLParam(r, "id"))
		WriteProductNotFound(w, id)
		return
	}

	product, err := p.productUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			p.logger.Warnf("%d product not found: id=%d", http.StatusNotFound, id)
			WriteProductNotFound(w, id)
			return
		}

		p.logger.Errorf(err, "failed to get product: id=%d", id)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FromDomain(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Перезаписывает изменяемые поля существующего товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductDTO	true	"Товар с валидным id"
//	@Success		200		{object}	ProductDTO
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		415		{object}	ErrorResponse	"Неверный Content-Type"
//	@Router			/products [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	if err := ensureJSONContentType(r); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	dto, err := decodeProduct(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := dto.ToDomain()
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	updated, err := p.productUsecase.Update(r.Context(), product)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			p.logger.Warnf("%d product not found: id=%d", http.StatusNotFound, product.ID)
			WriteProductNotFound(w, product.ID)
			return
		}

		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FromDomain(updated))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Удаляет товар по его идентификатору
//	@Tags			products
//	@Param			id	path	int	true	"Идентификатор товара"
//	@Success		204	"Товар удален"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%d invalid product id: %s", http.StatusNotFound, chi.URLParam(r, "id"))
		WriteProductNotFound(w, id)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			p.logger.Warnf("%d product not found: id=%d", http.StatusNotFound, id)
			WriteProductNotFound(w, id)
			return
		}

		p.logger.Errorf(err, "failed to delete product: id=%d", id)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает товары, удовлетворяющие всем заданным фильтрам
//	@Tags			products
//	@Produce		json
//	@Param			name		query		string	false	"Точное совпадение имени"
//	@Param			available	query		string	false	"Доступность (true/false)"
//	@Param			category	query		string	false	"Имя категории"
//	@Success		200			{array}		ProductDTO
//	@Failure		400			{object}	ErrorResponse	"Неизвестная категория"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.productUsecase.List(r.Context(), filter)
	if err != nil {
		p.logger.Errorf(err, "failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FromDomainList(products))
}
