package converter

import "time"

// ProductRedisModel — представление карточки товара в кэше Redis.
type ProductRedisModel struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           int64      `json:"price"`
	Stock           int        `json:"stock"`
	Category        string     `json:"category"`
	Photo           *string    `json:"photo,omitempty"`
	IsBestDeal      bool       `json:"is_best_deal"`
	IsWeeklyPopular bool       `json:"is_weekly_popular"`
	IsMostSelling   bool       `json:"is_most_selling"`
	IsTrending      bool       `json:"is_trending"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
