package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvalidPayload):
		return http.StatusBadRequest, e.ErrInvalidPayload.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrProductIDRequired):
		return http.StatusBadRequest, e.ErrProductIDRequired.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidAvailable):
		return http.StatusBadRequest, e.ErrInvalidAvailable.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

// WriteProductNotFound пишет 404 с сообщением, содержащим идентификатор.
func WriteProductNotFound(w http.ResponseWriter, id int64) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(NewErrorResponse(
		http.StatusNotFound,
		fmt.Sprintf("Product with id '%d' was not found.", id),
	))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ensureJSONContentType проверяет Content-Type до чтения тела.
// Отсутствующий или не-JSON Content-Type — 415, независимо от содержимого тела.
func ensureJSONContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedMediaType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedMediaType)
	}

	return nil
}

// decodeProduct разбирает тело запроса в DTO.
// Не-объект и ключи неверного типа — ошибка полезной нагрузки (400).
func decodeProduct(r *http.Request) (*ProductDTO, error) {
	var dto ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidPayload)
	}

	return &dto, nil
}

// parseProductID разбирает идентификатор из пути.
func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return id, nil
}

// parseListFilter собирает фильтр выборки из query-параметров.
func parseListFilter(r *http.Request) (usecase.ProductFilter, error) {
	var filter usecase.ProductFilter

	params := r.URL.Query()

	if params.Has("name") {
		name := params.Get("name")
		filter.Name = &name
	}

	if params.Has("available") {
		available, err := strconv.ParseBool(params.Get("available"))
		if err != nil {
			return usecase.ProductFilter{}, e.Wrap(whereami.WhereAmI(), e.ErrInvalidAvailable)
		}
		filter.Available = &available
	}

	if params.Has("category") {
		category, err := domain.ParseCategory(params.Get("category"))
		if err != nil {
			return usecase.ProductFilter{}, e.Wrap(whereami.WhereAmI(), err)
		}
		filter.Category = &category
	}

	return filter, nil
}
