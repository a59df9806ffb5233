package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCacheRepo) {
	productRepo := newFakeProductRepo()
	cacheRepo := newFakeCacheRepo()
	uc := usecase.NewProductUC(productRepo, cacheRepo, noopLogger{})
	return uc, productRepo, cacheRepo
}

func validProductReq() *usecase.AddProductReq {
	return &usecase.AddProductReq{
		Name:        "Desk Lamp",
		Description: "A small lamp for a desk",
		Price:       1999,
		Stock:       10,
		Category:    string(domain.CategoryFurniture),
	}
}

func TestAddProductValidation(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	cases := []struct {
		name    string
		mutate  func(req *usecase.AddProductReq)
		wantErr error
	}{
		{"short name", func(r *usecase.AddProductReq) { r.Name = "ab" }, e.ErrValidation},
		{"long name", func(r *usecase.AddProductReq) { r.Name = strings.Repeat("x", 51) }, e.ErrValidation},
		{"short description", func(r *usecase.AddProductReq) { r.Description = "too short" }, e.ErrValidation},
		{"negative price", func(r *usecase.AddProductReq) { r.Price = -1 }, e.ErrInvalidPrice},
		{"negative stock", func(r *usecase.AddProductReq) { r.Stock = -1 }, e.ErrInvalidStock},
		{"unknown category", func(r *usecase.AddProductReq) { r.Category = "weapons" }, e.ErrInvalidCategory},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validProductReq()
			tc.mutate(req)

			_, err := uc.AddProduct(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddProductDuplicateName(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	_, err := uc.AddProduct(context.Background(), validProductReq())
	require.NoError(t, err)

	_, err = uc.AddProduct(context.Background(), validProductReq())
	assert.ErrorIs(t, err, e.ErrProductExists)
}

func TestUpdateProductPartial(t *testing.T) {
	t.Parallel()

	uc, _, cacheRepo := newProductFixture()

	created, err := uc.AddProduct(context.Background(), validProductReq())
	require.NoError(t, err)

	cacheRepo.SetProducts(context.Background(), []domain.Product{*created})

	newPrice := int64(2599)
	trending := true
	updated, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
		ID:         created.ID,
		Price:      &newPrice,
		IsTrending: &trending,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2599), updated.Price)
	assert.True(t, updated.IsTrending)
	// Нетронутые поля сохранились
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Stock, updated.Stock)

	// Карточка ушла из кэша
	cached, _ := cacheRepo.GetProducts(context.Background(), []int64{created.ID})
	assert.Empty(t, cached)
}

func TestUpdateProductRejectsInvalidResult(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	created, err := uc.AddProduct(context.Background(), validProductReq())
	require.NoError(t, err)

	badCategory := "weapons"
	_, err = uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
		ID:       created.ID,
		Category: &badCategory,
	})
	assert.ErrorIs(t, err, e.ErrInvalidCategory)
}

func TestUpdateProductNotFound(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	name := "Another Lamp"
	_, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{ID: 404, Name: &name})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetProductUsesCache(t *testing.T) {
	t.Parallel()

	uc, productRepo, cacheRepo := newProductFixture()

	created, err := uc.AddProduct(context.Background(), validProductReq())
	require.NoError(t, err)

	cacheRepo.SetProducts(context.Background(), []domain.Product{*created})

	// Репозиторий больше не знает о товаре: попадание в кэш обязано его вернуть
	require.NoError(t, productRepo.Delete(context.Background(), created.ID))

	got, err := uc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	created, err := uc.AddProduct(context.Background(), validProductReq())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(context.Background(), created.ID))

	_, err = uc.GetProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	err = uc.DeleteProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	uc, productRepo, _ := newProductFixture()
	productRepo.add(domain.Product{Name: "Desk Lamp", Description: "A small desk lamp", Price: 1999, Stock: 5, Category: domain.CategoryFurniture})
	productRepo.add(domain.Product{Name: "Floor Lamp", Description: "A tall floor lamp", Price: 4999, Stock: 5, Category: domain.CategoryFurniture})
	productRepo.add(domain.Product{Name: "Go Book", Description: "A book about Go", Price: 4550, Stock: 5, Category: domain.CategoryBooks})

	t.Run("case-insensitive substring", func(t *testing.T) {
		t.Parallel()

		products, err := uc.Search(context.Background(), "lAmP")
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()

		_, err := uc.Search(context.Background(), "   ")
		assert.ErrorIs(t, err, e.ErrSearchQueryRequired)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		_, err := uc.Search(context.Background(), "sofa")
		assert.ErrorIs(t, err, e.ErrNoProducts)
	})
}

func TestSearchCategory(t *testing.T) {
	t.Parallel()

	uc, productRepo, _ := newProductFixture()
	productRepo.add(domain.Product{Name: "Go Book", Description: "A book about Go", Price: 4550, Stock: 5, Category: domain.CategoryBooks})

	products, err := uc.SearchCategory(context.Background(), " Books ")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = uc.SearchCategory(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrCategoryRequired)

	_, err = uc.SearchCategory(context.Background(), "tech")
	assert.ErrorIs(t, err, e.ErrNoProducts)
}

func TestListAllEmpty(t *testing.T) {
	t.Parallel()

	uc, _, _ := newProductFixture()

	_, err := uc.ListAll(context.Background())
	assert.ErrorIs(t, err, e.ErrNoProducts)
}

func TestPromoSectionLimit(t *testing.T) {
	t.Parallel()

	uc, productRepo, _ := newProductFixture()
	for i := 0; i < 15; i++ {
		productRepo.add(domain.Product{
			Name:        "Deal " + strings.Repeat("x", i+1),
			Description: "Discounted product number",
			Price:       100,
			Stock:       1,
			Category:    domain.CategoryTech,
			IsBestDeal:  true,
		})
	}

	products, err := uc.PromoSection(context.Background(), usecase.PromoBestDeal)
	require.NoError(t, err)
	assert.Len(t, products, 10)
}

func TestCategoriesPreview(t *testing.T) {
	t.Parallel()

	uc, productRepo, _ := newProductFixture()
	for i := 0; i < 8; i++ {
		productRepo.add(domain.Product{
			Name:        "Book " + strings.Repeat("x", i+1),
			Description: "Yet another paper book",
			Price:       100,
			Stock:       1,
			Category:    domain.CategoryBooks,
		})
	}

	preview, err := uc.CategoriesPreview(context.Background())
	require.NoError(t, err)

	assert.Len(t, preview[domain.CategoryBooks], 5)
	assert.Empty(t, preview[domain.CategoryTech])
}
