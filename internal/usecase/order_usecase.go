package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует оформление, просмотр и отмену заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// orderPlacedPayload — тело события order_placed для outbox.
type orderPlacedPayload struct {
	OrderID     string            `json:"order_id"`
	UserID      int64             `json:"user_id"`
	TotalAmount int64             `json:"total_amount"`
	Items       []orderPlacedItem `json:"items"`
	PlacedAt    time.Time         `json:"placed_at"`
}

type orderPlacedItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

// orderCancelledPayload — тело события order_cancelled для outbox.
type orderCancelledPayload struct {
	OrderID     string    `json:"order_id"`
	UserID      int64     `json:"user_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// PlaceOrder валидирует корзину, резервирует остатки и сохраняет заказ.
// Списание и создание заказа выполняются в одной транзакции: при любой
// ошибке остатки не меняются, заказ не появляется.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	// Валидация данных
	var err error
	if err = o.validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// При ошибке происходит Rollback: ни одно списание не остается в силе
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Последовательное резервирование остатков в порядке корзины.
	// Условный UPDATE блокирует строку товара, поэтому параллельные заказы
	// не могут увести остаток в минус.
	var (
		items       = make([]domain.OrderItem, 0, len(req.Items))
		totalAmount int64
	)
	for _, item := range req.Items {
		var res *ReserveStockRes
		res, err = o.productRepo.ReserveStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     res.Price,
		})
		totalAmount += res.Price * int64(item.Quantity)
	}

	order := domain.NewOrder(uuid.NewString(), req.UserID, items, totalAmount, domain.CustomerInfo{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	})

	order, err = o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Событие попадает в outbox той же транзакцией
	if err = o.publishOrderPlaced(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша карточек с устаревшими остатками
	if cacheErr := o.cacheRepo.DeleteProducts(ctx, productIDs(order.Items)); cacheErr != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return order, nil
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetOrder возвращает заказ, только если он принадлежит пользователю.
func (o *OrderUseCase) GetOrder(ctx context.Context, id, userID int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// CancelOrder удаляет заказ в статусе pending вместе со строками
// и возвращает зарезервированные остатки товарам.
func (o *OrderUseCase) CancelOrder(ctx context.Context, id, userID int64) error {
	const op = "OrderUseCase.CancelOrder"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var order *domain.Order
	order, err = o.orderRepo.GetForCancel(ctx, id, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if !order.CanBeCancelled() {
		err = e.ErrOrderNotPending
		return e.Wrap(op, err)
	}

	for _, item := range order.Items {
		if err = o.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			return e.Wrap(op, err)
		}
	}

	if err = o.orderRepo.Delete(ctx, order.ID); err != nil {
		return e.Wrap(op, err)
	}

	// Событие отмены попадает в outbox той же транзакцией
	if err = o.publishOrderCancelled(ctx, order); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if cacheErr := o.cacheRepo.DeleteProducts(ctx, productIDs(order.Items)); cacheErr != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return nil
}

// publishOrderPlaced сохраняет событие order_placed в outbox текущей транзакцией.
func (o *OrderUseCase) publishOrderPlaced(ctx context.Context, order *domain.Order) error {
	payloadItems := make([]orderPlacedItem, 0, len(order.Items))
	for _, item := range order.Items {
		payloadItems = append(payloadItems, orderPlacedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	payload, err := json.Marshal(orderPlacedPayload{
		OrderID:     order.PublicID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       payloadItems,
		PlacedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderPlaced, order.ID, payload))
	return err
}

// publishOrderCancelled сохраняет событие order_cancelled в outbox текущей транзакцией.
func (o *OrderUseCase) publishOrderCancelled(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(orderCancelledPayload{
		OrderID:     order.PublicID,
		UserID:      order.UserID,
		CancelledAt: time.Now(),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderCancelled, order.ID, payload))
	return err
}

// validateOrder проверяет корзину и контактные данные получателя.
func (o *OrderUseCase) validateOrder(req *PlaceOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrItemsRequired
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return e.ErrQuantityInvalid
		}
	}

	if strings.TrimSpace(req.Customer.Name) == "" ||
		strings.TrimSpace(req.Customer.Phone) == "" ||
		strings.TrimSpace(req.Customer.Address) == "" {
		return e.ErrCustomerInfoRequired
	}

	return nil
}

func productIDs(items []domain.OrderItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
