package usecase

import (
	"context"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
)

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, id, userID int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, id, userID int64) error
}

type ProductUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	SearchCategory(ctx context.Context, category string) ([]domain.Product, error)
	PromoSection(ctx context.Context, flag PromoFlag) ([]domain.Product, error)
	CategoriesPreview(ctx context.Context) (map[domain.Category][]domain.Product, error)
}

type UserUC interface {
	Signup(ctx context.Context, req *SignupReq) (*SessionRes, error)
	Login(ctx context.Context, req *LoginReq) (*SessionRes, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileReq) (*domain.User, error)
}
