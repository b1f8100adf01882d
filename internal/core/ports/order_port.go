package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.BikeOrder) (*domain.InsertResult, error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*domain.BikeOrder, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]*domain.BikeOrder, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, order *domain.BikeOrder) (*domain.InsertResult, error)
	GetOrder(ctx context.Context, id string) (*domain.BikeOrder, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]*domain.BikeOrder, error)
}
