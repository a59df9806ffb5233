package pgdb

import (
	"context"
	"errors"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/repository/pgdb/converter"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const orderColumns = `id, public_id, user_id, total_amount, status,
		customer_name, customer_phone, customer_address, created_at`

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool   *pgxpool.Pool
	conv   converter.OrderConverter
	prConv converter.ProductConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, prConv converter.ProductConverter) *OrderRepo {
	return &OrderRepo{
		pool:   pool,
		conv:   conv,
		prConv: prConv,
	}
}

// Create сохраняет заказ и его строки одной транзакцией.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (public_id, user_id, total_amount, status,
			customer_name, customer_phone, customer_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`

	in := o.conv.ToModel(order)
	if err := tx.QueryRow(ctx, query,
		in.PublicID, in.UserID, in.TotalAmount, in.Status,
		in.CustomerName, in.CustomerPhone, in.CustomerAddress,
	).Scan(&in.ID, &in.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	items := make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		item.OrderID = in.ID
		if err := tx.QueryRow(ctx, itemQuery,
			in.ID, item.ProductID, item.Quantity, item.Price,
		).Scan(&item.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		items = append(items, item)
	}

	return o.conv.ToEntity(in, items), nil
}

// ListByUser возвращает заказы пользователя, новые первыми,
// вместе со строками и карточками товаров.
func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.OrderModel
	for rows.Next() {
		var model converter.OrderModel
		if err := scanOrder(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(models) == 0 {
		return []domain.Order{}, nil
	}

	orderIDs := make([]int64, 0, len(models))
	for _, model := range models {
		orderIDs = append(orderIDs, model.ID)
	}

	itemsByOrder, err := o.loadItems(ctx, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orders := make([]domain.Order, 0, len(models))
	for _, model := range models {
		orders = append(orders, *o.conv.ToEntity(model, itemsByOrder[model.ID]))
	}

	return orders, nil
}

// GetByIDForUser возвращает заказ, только если он принадлежит пользователю.
func (o *OrderRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND user_id = $2;
	`

	var model converter.OrderModel
	if err := scanOrder(o.pool.QueryRow(ctx, query, id, userID), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsByOrder, err := o.loadItems(ctx, []int64{model.ID})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, itemsByOrder[model.ID]), nil
}

// GetForCancel блокирует строку заказа до конца транзакции отмены.
func (o *OrderRepo) GetForCancel(ctx context.Context, id, userID int64) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND user_id = $2
		FOR UPDATE;
	`

	var model converter.OrderModel
	if err := scanOrder(tx.QueryRow(ctx, query, id, userID), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1;
	`

	rows, err := tx.Query(ctx, itemQuery, model.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, items), nil
}

// Delete удаляет строки заказа, затем сам заказ.
func (o *OrderRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1;`, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// loadItems загружает строки сразу для набора заказов вместе с товарами.
func (o *OrderRepo) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
			pr.id, pr.name, pr.description, pr.price, pr.stock, pr.category, pr.photo,
			pr.is_best_deal, pr.is_weekly_popular, pr.is_most_selling, pr.is_trending,
			pr.created_at, pr.updated_at
		FROM order_items oi
		JOIN products pr ON oi.product_id = pr.id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id;
	`

	rows, err := o.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			item    domain.OrderItem
			product converter.ProductModel
		)
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock,
			&product.Category, &product.Photo, &product.IsBestDeal, &product.IsWeeklyPopular,
			&product.IsMostSelling, &product.IsTrending, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		item.Product = o.prConv.ToEntity(&product)
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	return result, rows.Err()
}

func scanOrder(row pgx.Row, model *converter.OrderModel) error {
	return row.Scan(
		&model.ID, &model.PublicID, &model.UserID, &model.TotalAmount, &model.Status,
		&model.CustomerName, &model.CustomerPhone, &model.CustomerAddress, &model.CreatedAt,
	)
}
