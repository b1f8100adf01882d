package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *Database) *OrderRepository {
	return &OrderRepository{coll: db.DB.Collection(OrdersCollection)}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.BikeOrder) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	return insertResult(res), nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*domain.BikeOrder, error) {
	var order domain.BikeOrder
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) GetOrdersByEmail(ctx context.Context, email string) ([]*domain.BikeOrder, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := []*domain.BikeOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}
