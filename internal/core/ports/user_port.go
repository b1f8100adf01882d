package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookups return a nil user and nil error when nothing matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsBuyer(ctx context.Context, email string) (bool, error)
	IsSeller(ctx context.Context, email string) (bool, error)
}
