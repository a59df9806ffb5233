package converter

import (
	"github.com/Ranjan7481/Ecommerce/internal/domain"
)

// ProductConverter преобразует карточки товаров между domain и Redis-моделью.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:              entity.ID,
		Name:            entity.Name,
		Description:     entity.Description,
		Price:           entity.Price,
		Stock:           entity.Stock,
		Category:        string(entity.Category),
		Photo:           entity.Photo,
		IsBestDeal:      entity.IsBestDeal,
		IsWeeklyPopular: entity.IsWeeklyPopular,
		IsMostSelling:   entity.IsMostSelling,
		IsTrending:      entity.IsTrending,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price,
		Stock:           model.Stock,
		Category:        domain.Category(model.Category),
		Photo:           model.Photo,
		IsBestDeal:      model.IsBestDeal,
		IsWeeklyPopular: model.IsWeeklyPopular,
		IsMostSelling:   model.IsMostSelling,
		IsTrending:      model.IsTrending,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		result = append(result, *c.ToRedisModel(&entities[i]))
	}

	return result
}
