package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// stubUserUC резолвит фиксированные токены в фиксированных пользователей.
type stubUserUC struct {
	users map[string]*domain.User
}

func (s *stubUserUC) Signup(ctx context.Context, req *usecase.SignupReq) (*usecase.SessionRes, error) {
	return nil, e.ErrEmailExists
}

func (s *stubUserUC) Login(ctx context.Context, req *usecase.LoginReq) (*usecase.SessionRes, error) {
	return nil, e.ErrUserNotFound
}

func (s *stubUserUC) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, e.ErrUserNotFound
}

func (s *stubUserUC) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, e.ErrUnauthorized
	}
	return user, nil
}

func (s *stubUserUC) UpdateProfile(ctx context.Context, req *usecase.UpdateProfileReq) (*domain.User, error) {
	user := s.users["user-token"]
	updated := *user
	if req.FullName != nil {
		updated.FullName = *req.FullName
	}
	return &updated, nil
}

type stubProductUC struct {
	added *usecase.AddProductReq
}

func (s *stubProductUC) AddProduct(ctx context.Context, req *usecase.AddProductReq) (*domain.Product, error) {
	s.added = req
	return &domain.Product{ID: 1, Name: req.Name, Description: req.Description, Price: req.Price,
		Stock: req.Stock, Category: domain.Category(req.Category)}, nil
}

func (s *stubProductUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (s *stubProductUC) DeleteProduct(ctx context.Context, id int64) error {
	// Товар 2 закреплен за существующими заказами
	if id == 2 {
		return e.Wrap("ProductRepo.Delete", e.ErrProductInUse)
	}
	return nil
}

func (s *stubProductUC) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (s *stubProductUC) ListAll(ctx context.Context) ([]domain.Product, error) {
	return nil, e.ErrNoProducts
}

func (s *stubProductUC) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, e.ErrSearchQueryRequired
	}
	return nil, e.ErrNoProducts
}

func (s *stubProductUC) SearchCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return nil, e.ErrNoProducts
}

func (s *stubProductUC) PromoSection(ctx context.Context, flag usecase.PromoFlag) ([]domain.Product, error) {
	return []domain.Product{}, nil
}

func (s *stubProductUC) CategoriesPreview(ctx context.Context) (map[domain.Category][]domain.Product, error) {
	return map[domain.Category][]domain.Product{}, nil
}

type stubOrderUC struct{}

func (s *stubOrderUC) PlaceOrder(ctx context.Context, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	return &domain.Order{
		ID:          1,
		PublicID:    "0d7e4f7e-0000-0000-0000-000000000001",
		UserID:      req.UserID,
		Status:      domain.OrderPending,
		TotalAmount: 5998,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 2999},
		},
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubOrderUC) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (s *stubOrderUC) GetOrder(ctx context.Context, id, userID int64) (*domain.Order, error) {
	return nil, e.ErrOrderNotFound
}

func (s *stubOrderUC) CancelOrder(ctx context.Context, id, userID int64) error {
	return e.ErrOrderNotPending
}

func newTestRouter() *chi.Mux {
	users := map[string]*domain.User{
		"user-token":  {ID: 7, FullName: "Ivan Petrov", Email: "ivan@example.com", Role: domain.RoleUser},
		"admin-token": {ID: 1, FullName: "Admin Adminov", Email: "admin@example.com", Role: domain.RoleAdmin},
	}

	mux := chi.NewRouter()
	router := NewRouter(mux, noopLogger{})
	router.Init(&stubUserUC{users: users}, &stubProductUC{}, &stubOrderUC{}, time.Hour)
	return mux
}

func doRequest(t *testing.T, mux *chi.Mux, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/profile", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusUnauthorized, body.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/profile", "garbage", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/profile", "user-token", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Ivan Petrov", body.FullName)
	})
}

func TestAdminOnlyRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()
	payload := `{"ProductName":"Desk Lamp","description":"A small desk lamp","price":29.99,"stock":5,"category":"furniture"}`

	t.Run("regular user forbidden", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodPost, "/product/add", "user-token", payload)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodPost, "/product/add", "admin-token", payload)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		// Цена распарсена в центы и отдана обратно строкой
		assert.Equal(t, "29.99", body.Price)
	})

	t.Run("delete ordered product rejected", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodDelete, "/product/delete/2", "admin-token", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, e.ErrProductInUse.Error(), body.Message)
	})
}

func TestUpdateProfileFieldWhitelist(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()

	t.Run("allowed field", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodPatch, "/profile/update", "user-token", `{"FullName":"Petr Ivanov"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("email is not editable", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodPatch, "/profile/update", "user-token", `{"emailId":"new@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, e.ErrEditFieldNotAllowed.Error(), body.Message)
	})
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()
	payload := `{"items":[{"productId":1,"quantity":2}],"customer":{"name":"Ivan","phone":"+79001234567","address":"Tverskaya 1"}}`

	rec := doRequest(t, mux, http.MethodPost, "/createOrders", "user-token", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "59.98", body.TotalAmount)
	assert.Equal(t, "pending", body.Status)
}

func TestOrderErrorStatuses(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()

	t.Run("missing order", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/orders/42", "user-token", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cancel non-pending", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodDelete, "/orders/42", "user-token", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/orders/abc", "user-token", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPublicCatalogStatuses(t *testing.T) {
	t.Parallel()

	mux := newTestRouter()

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/allproducts", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("search without query", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/search", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("promo section is public", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, mux, http.MethodGet, "/best-deals", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
