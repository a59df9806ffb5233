package http

import (
	"encoding/json"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
)

// ЗАПРОСЫ
// Имена JSON-полей повторяют контракт фронтенда.

type SignupRequest struct {
	FullName string  `json:"FullName"`
	Email    string  `json:"emailId"`
	Password string  `json:"password"`
	Age      int     `json:"age"`
	Phone    *string `json:"phone,omitempty"`
	Address  string  `json:"address"`
	Photo    *string `json:"photo,omitempty"`
	Role     string  `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"emailId"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"FullName,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Photo    *string `json:"photo,omitempty"`
}

type ProductRequest struct {
	Name            string      `json:"ProductName"`
	Description     string      `json:"description"`
	Price           json.Number `json:"price"`
	Stock           int         `json:"stock"`
	Category        string      `json:"category"`
	Photo           *string     `json:"productPhoto,omitempty"`
	IsBestDeal      bool        `json:"isBestDeal"`
	IsWeeklyPopular bool        `json:"isWeeklyPopular"`
	IsMostSelling   bool        `json:"isMostSelling"`
	IsTrending      bool        `json:"isTrending"`
}

type UpdateProductRequest struct {
	Name            *string      `json:"ProductName,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Price           *json.Number `json:"price,omitempty"`
	Stock           *int         `json:"stock,omitempty"`
	Category        *string      `json:"category,omitempty"`
	Photo           *string      `json:"productPhoto,omitempty"`
	IsBestDeal      *bool        `json:"isBestDeal,omitempty"`
	IsWeeklyPopular *bool        `json:"isWeeklyPopular,omitempty"`
	IsMostSelling   *bool        `json:"isMostSelling,omitempty"`
	IsTrending      *bool        `json:"isTrending,omitempty"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest  `json:"items"`
	Customer CustomerInfoRequest `json:"customer"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CustomerInfoRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ОТВЕТЫ

type UserResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"FullName"`
	Email    string  `json:"emailId"`
	Age      int     `json:"age"`
	Phone    *string `json:"phone,omitempty"`
	Address  string  `json:"address"`
	Photo    *string `json:"photo,omitempty"`
	Role     string  `json:"role"`
}

type ProductResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"ProductName"`
	Description     string  `json:"description"`
	Price           string  `json:"price"`
	Stock           int     `json:"stock"`
	Category        string  `json:"category"`
	Photo           *string `json:"productPhoto,omitempty"`
	IsBestDeal      bool    `json:"isBestDeal"`
	IsWeeklyPopular bool    `json:"isWeeklyPopular"`
	IsMostSelling   bool    `json:"isMostSelling"`
	IsTrending      bool    `json:"isTrending"`
}

type OrderItemResponse struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
	Customer    CustomerInfoRequest `json:"customer"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type CategoryPreviewResponse struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}

// МАППЕРЫ

func toUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Age:      user.Age,
		Phone:    user.Phone,
		Address:  user.Address,
		Photo:    user.Photo,
		Role:     string(user.Role),
	}
}

func toProductResponse(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           formatCents(product.Price),
		Stock:           product.Stock,
		Category:        string(product.Category),
		Photo:           product.Photo,
		IsBestDeal:      product.IsBestDeal,
		IsWeeklyPopular: product.IsWeeklyPopular,
		IsMostSelling:   product.IsMostSelling,
		IsTrending:      product.IsTrending,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}

	return result
}

func toOrderResponse(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		res := OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     formatCents(item.Price),
		}
		if item.Product != nil {
			res.ProductName = item.Product.Name
		}
		items = append(items, res)
	}

	return &OrderResponse{
		ID:          order.ID,
		OrderNumber: order.PublicID,
		Status:      string(order.Status),
		TotalAmount: formatCents(order.TotalAmount),
		Items:       items,
		Customer: CustomerInfoRequest{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		},
		CreatedAt: order.CreatedAt,
	}
}

func toArrOrderResponse(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *toOrderResponse(&orders[i]))
	}

	return result
}
