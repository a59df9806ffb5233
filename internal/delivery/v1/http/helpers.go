package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/shopspring/decimal"
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

// ToHTTPResponse — единая карта ошибок домена в HTTP-статусы.
// Каждый хендлер отдает ошибки только через нее.
func ToHTTPResponse(err error) (int, string) {
	switch {
	// 400: валидация и нарушенные бизнес-правила
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, trimWrap(err)
	case errors.Is(err, e.ErrItemsRequired):
		return http.StatusBadRequest, e.ErrItemsRequired.Error()
	case errors.Is(err, e.ErrCustomerInfoRequired):
		return http.StatusBadRequest, e.ErrCustomerInfoRequired.Error()
	case errors.Is(err, e.ErrQuantityInvalid):
		return http.StatusBadRequest, e.ErrQuantityInvalid.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidStock):
		return http.StatusBadRequest, e.ErrInvalidStock.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrSearchQueryRequired):
		return http.StatusBadRequest, e.ErrSearchQueryRequired.Error()
	case errors.Is(err, e.ErrCategoryRequired):
		return http.StatusBadRequest, e.ErrCategoryRequired.Error()
	case errors.Is(err, e.ErrEditFieldNotAllowed):
		return http.StatusBadRequest, e.ErrEditFieldNotAllowed.Error()
	case errors.Is(err, e.ErrProductExists):
		return http.StatusBadRequest, e.ErrProductExists.Error()
	case errors.Is(err, e.ErrProductInUse):
		return http.StatusBadRequest, e.ErrProductInUse.Error()
	case errors.Is(err, e.ErrEmailExists):
		return http.StatusBadRequest, e.ErrEmailExists.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusBadRequest, trimWrap(err)
	case errors.Is(err, e.ErrOrderNotPending):
		return http.StatusBadRequest, e.ErrOrderNotPending.Error()
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusBadRequest, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusBadRequest, e.ErrInvalidCredentials.Error()

	// 401 / 403
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()

	// 404
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrNoProducts):
		return http.StatusNotFound, e.ErrNoProducts.Error()

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

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// trimWrap убирает из сообщения служебные префиксы оберток e.Wrap:
// пути исходников из whereami и теги операций вида "Type.Method".
// Контекст для клиента (имя товара, детали валидации) остается.
func trimWrap(err error) string {
	msg := err.Error()

	// Метки whereami содержат путь к файлу; после них хвост — само сообщение
	if idx := strings.LastIndex(msg, ": "); idx >= 0 && strings.Contains(msg[:idx], "/") {
		msg = msg[idx+2:]
	}

	for {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			return msg
		}
		if tag := msg[:idx]; strings.Contains(tag, " ") || !strings.Contains(tag, ".") {
			return msg
		}
		msg = msg[idx+2:]
	}
}

// parsePriceToCents переводит строку вида "599.99" или "600" в int64 центы.
// Ошибка при неверном формате, более чем двух знаках после точки,
// отрицательном значении или выходе за разумный предел.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// formatCents печатает цену в центах как десятичную строку для ответов API.
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrValidation)
	}

	return nil
}
