package usecase

import "github.com/Ranjan7481/Ecommerce/internal/domain"

// ORDER USECASE

// PlaceOrderReq — запрос на оформление заказа из корзины.
type PlaceOrderReq struct {
	UserID   int64
	Items    []OrderItemReq
	Customer CustomerReq
}

// OrderItemReq — позиция корзины: товар и количество.
type OrderItemReq struct {
	ProductID int64
	Quantity  int
}

// CustomerReq — контактные данные получателя из формы оформления.
type CustomerReq struct {
	Name    string
	Phone   string
	Address string
}

// ReserveStockRes — результат условного списания остатка:
// имя и цена товара на момент резервирования.
type ReserveStockRes struct {
	Name  string
	Price int64
}

// PRODUCT USECASE

// AddProductReq — запрос на добавление товара в каталог.
type AddProductReq struct {
	Name            string
	Description     string
	Price           int64
	Stock           int
	Category        string
	Photo           *string
	IsBestDeal      bool
	IsWeeklyPopular bool
	IsMostSelling   bool
	IsTrending      bool
}

// UpdateProductReq — частичное обновление товара: заданы только изменяемые поля.
type UpdateProductReq struct {
	ID              int64
	Name            *string
	Description     *string
	Price           *int64
	Stock           *int
	Category        *string
	Photo           *string
	IsBestDeal      *bool
	IsWeeklyPopular *bool
	IsMostSelling   *bool
	IsTrending      *bool
}

// PromoFlag выбирает одну из промо-подборок каталога.
type PromoFlag string

const (
	PromoBestDeal      PromoFlag = "best_deal"
	PromoWeeklyPopular PromoFlag = "weekly_popular"
	PromoMostSelling   PromoFlag = "most_selling"
	PromoTrending      PromoFlag = "trending"
)

// ProductFilter — фильтр выборки товаров. Пустой фильтр означает весь каталог.
type ProductFilter struct {
	Category  *domain.Category
	Flag      *PromoFlag
	NameQuery *string // подстрока имени, без учета регистра
	Limit     int     // 0 — без ограничения
}

// USER USECASE

// SignupReq — запрос на регистрацию пользователя.
type SignupReq struct {
	FullName string
	Email    string
	Password string
	Age      int
	Phone    *string
	Address  string
	Photo    *string
	Role     string
}

// LoginReq — запрос на вход по паре email/пароль.
type LoginReq struct {
	Email    string
	Password string
}

// UpdateProfileReq — частичное обновление профиля.
// Разрешены только FullName, age, phone, address и photo.
type UpdateProfileReq struct {
	UserID   int64
	FullName *string
	Age      *int
	Phone    *string
	Address  *string
	Photo    *string
}

// SessionRes — пользователь и выпущенный для него токен сессии.
type SessionRes struct {
	User  *domain.User
	Token string
}

// MAPPERS

func NewPlaceOrderReq(userID int64, items []OrderItemReq, customer CustomerReq) *PlaceOrderReq {
	return &PlaceOrderReq{
		UserID:   userID,
		Items:    items,
		Customer: customer,
	}
}

func NewReserveStockRes(name string, price int64) *ReserveStockRes {
	return &ReserveStockRes{
		Name:  name,
		Price: price,
	}
}

func NewSessionRes(user *domain.User, token string) *SessionRes {
	return &SessionRes{
		User:  user,
		Token: token,
	}
}
