package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrInvalidPayload      = fmt.Errorf("request body is not a JSON object")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrProductIDRequired   = fmt.Errorf("product id is required")
	ErrInvalidCategory     = fmt.Errorf("category does not match a known member")
	ErrInvalidPrice        = fmt.Errorf("price must be a decimal number")
	ErrInvalidAvailable    = fmt.Errorf("available must be a boolean")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 415 Unsupported Media Type
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
