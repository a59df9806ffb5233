package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request — валидация
	ErrValidation           = fmt.Errorf("validation failed")
	ErrItemsRequired        = fmt.Errorf("items are required and must be a non-empty array")
	ErrCustomerInfoRequired = fmt.Errorf("customer name, phone and address are required")
	ErrQuantityInvalid      = fmt.Errorf("quantity must be a positive integer")
	ErrInvalidPrice         = fmt.Errorf("price must be a valid non-negative number")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidStock         = fmt.Errorf("stock must be a non-negative integer")
	ErrInvalidCategory      = fmt.Errorf("invalid category")
	ErrSearchQueryRequired  = fmt.Errorf("search query is required")
	ErrCategoryRequired     = fmt.Errorf("category is required")
	ErrEditFieldNotAllowed  = fmt.Errorf("invalid edit request")
	ErrProductExists        = fmt.Errorf("product already exists")
	ErrProductInUse         = fmt.Errorf("product has orders and cannot be deleted")
	ErrEmailExists          = fmt.Errorf("email already exists")

	// 400 Bad Request — бизнес-правила заказа
	ErrInsufficientStock = fmt.Errorf("not enough stock")
	ErrOrderNotPending   = fmt.Errorf("only pending orders can be deleted")

	// 400/401/403 — аутентификация и доступ
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("login required")
	ErrForbidden          = fmt.Errorf("admin access required")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")
	ErrNoProducts      = fmt.Errorf("no products found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
