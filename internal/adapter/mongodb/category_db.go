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

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *Database) *CategoryRepository {
	return &CategoryRepository{coll: db.DB.Collection(CategoriesCollection)}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	categories := []*domain.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var category domain.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}
