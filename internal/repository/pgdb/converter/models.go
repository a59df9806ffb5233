package converter

import "time"

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           int64      `db:"id"`
	FullName     string     `db:"full_name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Age          int        `db:"age"`
	Phone        *string    `db:"phone"`
	Address      string     `db:"address"`
	Photo        *string    `db:"photo"`
	Role         string     `db:"role"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID              int64      `db:"id"`
	Name            string     `db:"name"`
	Description     string     `db:"description"`
	Price           int64      `db:"price"`
	Stock           int        `db:"stock"`
	Category        string     `db:"category"`
	Photo           *string    `db:"photo"`
	IsBestDeal      bool       `db:"is_best_deal"`
	IsWeeklyPopular bool       `db:"is_weekly_popular"`
	IsMostSelling   bool       `db:"is_most_selling"`
	IsTrending      bool       `db:"is_trending"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              int64     `db:"id"`
	PublicID        string    `db:"public_id"`
	UserID          int64     `db:"user_id"`
	TotalAmount     int64     `db:"total_amount"`
	Status          string    `db:"status"`
	CustomerName    string    `db:"customer_name"`
	CustomerPhone   string    `db:"customer_phone"`
	CustomerAddress string    `db:"customer_address"`
	CreatedAt       time.Time `db:"created_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
	Price     int64 `db:"price"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
