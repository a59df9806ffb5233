package domain

import "time"

// OrderStatus описывает состояние заказа
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// CustomerInfo — контактные данные получателя, зафиксированные при оформлении
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// OrderItem — строка заказа с ценой, снятой в момент оформления.
// После создания не изменяется.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     int64 // цена за единицу в центах на момент заказа
	Product   *Product
}

// Order описывает заказ пользователя
type Order struct {
	ID          int64
	PublicID    string // uuid, внешний идентификатор
	UserID      int64
	Items       []OrderItem
	TotalAmount int64 // сумма price*quantity по строкам, вычисляется один раз
	Status      OrderStatus
	Customer    CustomerInfo
	CreatedAt   time.Time
}

func NewOrder(publicID string, userID int64, items []OrderItem, totalAmount int64, customer CustomerInfo) *Order {
	return &Order{
		PublicID:    publicID,
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      OrderPending,
		Customer:    customer,
	}
}

// CanBeCancelled сообщает, допускает ли текущий статус отмену заказа.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending
}
