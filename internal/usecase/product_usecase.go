package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
)

const promoSectionLimit = 10

// ProductUseCase реализует управление каталогом и его выборки.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// AddProduct валидирует и создает новый товар. Имя товара уникально.
func (p *ProductUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.AddProduct"

	if err := validateProductFields(req.Name, req.Description, req.Price, req.Stock, req.Category); err != nil {
		return nil, e.Wrap(op, err)
	}

	if existing, err := p.productRepo.GetByName(ctx, req.Name); err == nil && existing != nil {
		return nil, e.Wrap(op, e.ErrProductExists)
	}

	product := domain.NewProduct(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.Price,
		req.Stock,
		domain.Category(req.Category),
		req.Photo,
	)
	product.IsBestDeal = req.IsBestDeal
	product.IsWeeklyPopular = req.IsWeeklyPopular
	product.IsMostSelling = req.IsMostSelling
	product.IsTrending = req.IsTrending

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct применяет частичное обновление к существующему товару.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	product, err := p.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		product.Category = domain.Category(strings.TrimSpace(*req.Category))
	}
	if req.Photo != nil {
		product.Photo = req.Photo
	}
	if req.IsBestDeal != nil {
		product.IsBestDeal = *req.IsBestDeal
	}
	if req.IsWeeklyPopular != nil {
		product.IsWeeklyPopular = *req.IsWeeklyPopular
	}
	if req.IsMostSelling != nil {
		product.IsMostSelling = *req.IsMostSelling
	}
	if req.IsTrending != nil {
		product.IsTrending = *req.IsTrending
	}

	if err := validateProductFields(product.Name, product.Description, product.Price, product.Stock, string(product.Category)); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, updated.ID)

	return updated, nil
}

// DeleteProduct удаляет товар из каталога.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	return nil
}

// GetProduct возвращает карточку товара, используя кэш.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	// Поиск товара в кэше
	cached, err := p.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if product, ok := cached[id]; ok {
			return &product, nil
		}
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []domain.Product{*product}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// ListAll возвращает весь каталог.
func (p *ProductUseCase) ListAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListAll"

	products, err := p.productRepo.List(ctx, ProductFilter{})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	return products, nil
}

// Search ищет товары по подстроке имени без учета регистра.
func (p *ProductUseCase) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const op = "ProductUseCase.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, e.Wrap(op, e.ErrSearchQueryRequired)
	}

	products, err := p.productRepo.List(ctx, ProductFilter{NameQuery: &query})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	return products, nil
}

// SearchCategory возвращает товары заданной категории.
func (p *ProductUseCase) SearchCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const op = "ProductUseCase.SearchCategory"

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, e.Wrap(op, e.ErrCategoryRequired)
	}

	cat := domain.Category(category)
	products, err := p.productRepo.List(ctx, ProductFilter{Category: &cat})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrNoProducts)
	}

	return products, nil
}

// PromoSection возвращает до десяти товаров одной промо-подборки.
func (p *ProductUseCase) PromoSection(ctx context.Context, flag PromoFlag) ([]domain.Product, error) {
	const op = "ProductUseCase.PromoSection"

	products, err := p.productRepo.List(ctx, ProductFilter{Flag: &flag, Limit: promoSectionLimit})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// CategoriesPreview возвращает по нескольку товаров каждой категории.
func (p *ProductUseCase) CategoriesPreview(ctx context.Context) (map[domain.Category][]domain.Product, error) {
	const (
		op           = "ProductUseCase.CategoriesPreview"
		previewLimit = 5
	)

	result := make(map[domain.Category][]domain.Product, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		products, err := p.productRepo.List(ctx, ProductFilter{Category: &cat, Limit: previewLimit})
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		result[cat] = products
	}

	return result, nil
}

// invalidate удаляет карточку товара из кэша, ошибки только логируются.
func (p *ProductUseCase) invalidate(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to delete product %d from cache: %v", id, err)
	}
}

// validateProductFields проверяет ограничения полей товара.
func validateProductFields(name, description string, price int64, stock int, category string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 || len(name) > 50 {
		return e.Wrap("product name must be between 3 and 50 characters", e.ErrValidation)
	}

	description = strings.TrimSpace(description)
	if len(description) < 10 || len(description) > 500 {
		return e.Wrap("description must be between 10 and 500 characters", e.ErrValidation)
	}

	if price < 0 {
		return e.ErrInvalidPrice
	}

	if stock < 0 {
		return e.ErrInvalidStock
	}

	if !domain.Category(strings.TrimSpace(category)).Valid() {
		return e.ErrInvalidCategory
	}

	return nil
}
