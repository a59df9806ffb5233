package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/repository/pgdb/converter"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, name, description, price, stock, category, photo,
		is_best_deal, is_weekly_popular, is_most_selling, is_trending, created_at, updated_at`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
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

// Create сохраняет новый товар. Имя уникально.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category, photo,
			is_best_deal, is_weekly_popular, is_most_selling, is_trending)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + productColumns + `;
	`

	in := p.conv.ToModel(product)

	model, err := p.scanOne(p.pool.QueryRow(ctx, query,
		in.Name, in.Description, in.Price, in.Stock, in.Category, in.Photo,
		in.IsBestDeal, in.IsWeeklyPopular, in.IsMostSelling, in.IsTrending,
	))
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает поля товара по ID.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category = $6, photo = $7,
			is_best_deal = $8, is_weekly_popular = $9, is_most_selling = $10, is_trending = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	in := p.conv.ToModel(product)

	model, err := p.scanOne(p.pool.QueryRow(ctx, query,
		in.ID, in.Name, in.Description, in.Price, in.Stock, in.Category, in.Photo,
		in.IsBestDeal, in.IsWeeklyPopular, in.IsMostSelling, in.IsTrending,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete удаляет товар. Товар, на который ссылаются строки заказов,
// удалить нельзя: снимки цен в заказах остаются привязанными к нему.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		if postgresForeignKey(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductInUse)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	model, err := p.scanOne(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1;`

	model, err := p.scanOne(p.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// List возвращает товары по фильтру категории, промо-флага и подстроки имени.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.Flag != nil {
		column, err := promoColumn(*filter.Flag)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		conditions = append(conditions, column+" = TRUE")
	}

	if filter.NameQuery != nil {
		args = append(args, "%"+*filter.NameQuery+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		model, err := p.scanOne(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// ReserveStock условно списывает остаток: строка обновляется, только если
// остатка хватает. Отсутствие строки означает либо нехватку, либо отсутствие
// товара. Выполняется внутри транзакции заказа.
func (p *ProductRepo) ReserveStock(ctx context.Context, productID int64, quantity int) (*usecase.ReserveStockRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
		RETURNING name, price;
	`

	var (
		name  string
		price int64
	)
	err = tx.QueryRow(ctx, query, productID, quantity).Scan(&name, &price)
	if err == nil {
		return usecase.NewReserveStockRes(name, price), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// UPDATE не нашел строку: различаем отсутствующий товар и нехватку остатка
	err = tx.QueryRow(ctx, `SELECT name FROM products WHERE id = $1;`, productID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return nil, e.Wrap(name, e.ErrInsufficientStock)
}

// RestoreStock возвращает списанный остаток при отмене заказа.
func (p *ProductRepo) RestoreStock(ctx context.Context, productID int64, quantity int) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1;
	`

	if _, err := tx.Exec(ctx, query, productID, quantity); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) scanOne(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.Stock,
		&model.Category, &model.Photo, &model.IsBestDeal, &model.IsWeeklyPopular,
		&model.IsMostSelling, &model.IsTrending, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func promoColumn(flag usecase.PromoFlag) (string, error) {
	switch flag {
	case usecase.PromoBestDeal:
		return "is_best_deal", nil
	case usecase.PromoWeeklyPopular:
		return "is_weekly_popular", nil
	case usecase.PromoMostSelling:
		return "is_most_selling", nil
	case usecase.PromoTrending:
		return "is_trending", nil
	default:
		return "", fmt.Errorf("unknown promo flag: %s", flag)
	}
}
