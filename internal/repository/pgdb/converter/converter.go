package converter

import (
	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
)

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel, items []domain.OrderItem) *domain.Order
}

// OutboxEventConverter преобразует события outbox между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(event *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type UserConverterImpl struct{}

func NewUserConverterImpl() *UserConverterImpl {
	return &UserConverterImpl{}
}

func (c *UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	return &UserModel{
		ID:           entity.ID,
		FullName:     entity.FullName,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		Age:          entity.Age,
		Phone:        entity.Phone,
		Address:      entity.Address,
		Photo:        entity.Photo,
		Role:         string(entity.Role),
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (c *UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		FullName:     model.FullName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Age:          model.Age,
		Phone:        model.Phone,
		Address:      model.Address,
		Photo:        model.Photo,
		Role:         domain.Role(model.Role),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
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

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
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

func (c *ProductConverterImpl) ToArrEntity(models []*ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for _, model := range models {
		result = append(result, *c.ToEntity(model))
	}

	return result
}

type OrderConverterImpl struct{}

func NewOrderConverterImpl() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func (c *OrderConverterImpl) ToModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:              entity.ID,
		PublicID:        entity.PublicID,
		UserID:          entity.UserID,
		TotalAmount:     entity.TotalAmount,
		Status:          string(entity.Status),
		CustomerName:    entity.Customer.Name,
		CustomerPhone:   entity.Customer.Phone,
		CustomerAddress: entity.Customer.Address,
		CreatedAt:       entity.CreatedAt,
	}
}

func (c *OrderConverterImpl) ToEntity(model *OrderModel, items []domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:          model.ID,
		PublicID:    model.PublicID,
		UserID:      model.UserID,
		Items:       items,
		TotalAmount: model.TotalAmount,
		Status:      domain.OrderStatus(model.Status),
		Customer: domain.CustomerInfo{
			Name:    model.CustomerName,
			Phone:   model.CustomerPhone,
			Address: model.CustomerAddress,
		},
		CreatedAt: model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(event *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          event.ID,
		EventID:     event.EventID,
		EventType:   string(event.EventType),
		OrderID:     event.OrderID,
		Payload:     event.Payload,
		Status:      string(event.Status),
		CreatedAt:   event.CreatedAt,
		ProcessedAt: event.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
