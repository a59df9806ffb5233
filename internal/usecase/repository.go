package usecase

import (
	"context"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
)

type UserRepository interface {
	// Create возвращает e.ErrEmailExists при дубликате email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ProductRepository interface {
	// Create возвращает e.ErrProductExists при дубликате имени.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// ReserveStock атомарно уменьшает остаток при достаточном количестве.
	// Возвращает e.ErrProductNotFound либо e.ErrInsufficientStock с именем товара.
	// Выполняется только внутри транзакции заказа.
	ReserveStock(ctx context.Context, productID int64, quantity int) (*ReserveStockRes, error)
	// RestoreStock возвращает остаток при отмене заказа. Только внутри транзакции.
	RestoreStock(ctx context.Context, productID int64, quantity int) error
}

type OrderRepository interface {
	// Create сохраняет заказ вместе со строками. Только внутри транзакции.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// ListByUser возвращает заказы пользователя, новые первыми,
	// со строками и данными товаров.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	// GetByIDForUser возвращает e.ErrOrderNotFound, если заказ отсутствует
	// или принадлежит другому пользователю.
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	// GetForCancel блокирует строку заказа до конца транзакции. Только внутри транзакции.
	GetForCancel(ctx context.Context, id, userID int64) (*domain.Order, error)
	// Delete удаляет строки заказа, затем сам заказ. Только внутри транзакции.
	Delete(ctx context.Context, id int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
