package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID              int64
	Name            string
	Description     string
	Price           int64 // Цена хранится в центах
	Stock           int   // Остаток на складе, не бывает отрицательным
	Category        Category
	Photo           *string // base64-кодированное изображение
	IsBestDeal      bool
	IsWeeklyPopular bool
	IsMostSelling   bool
	IsTrending      bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func NewProduct(name, description string, price int64, stock int, category Category, photo *string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		Photo:       photo,
	}
}
