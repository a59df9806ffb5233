package http

import (
	"net/http"

	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Оформление заказа из корзины
//	@Description	Атомарно списывает остатки по всем позициям и создает заказ
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateOrderRequest	true	"Позиции и данные получателя"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или нехватка остатков"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/createOrders [post]
func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("create order: bad payload: %s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUsecase.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(user.ID, items, usecase.CustomerReq{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}))
	if err != nil {
		h.logger.Warnf("place order failed for user %d: %s", user.ID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders
//
//	@Summary	Заказы текущего пользователя, новые первыми
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	orders, err := h.orderUsecase.ListOrders(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderResponse(orders))
}

// getOrder
//
//	@Summary	Один заказ текущего пользователя
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"ID заказа"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), id, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// cancelOrder
//
//	@Summary		Отмена заказа
//	@Description	Отменяет pending-заказ и возвращает остатки товарам
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	ErrorResponse	"Заказ уже не pending"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [delete]
func (h *OrderHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUsecase.CancelOrder(r.Context(), id, user.ID); err != nil {
		h.logger.Warnf("cancel order %d failed for user %d: %s", id, user.ID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"cancelled": true})
}
