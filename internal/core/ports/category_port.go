package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
}
