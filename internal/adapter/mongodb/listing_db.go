package mongodb

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *Database) *ListingRepository {
	return &ListingRepository{coll: db.DB.Collection(ListingsCollection)}
}

func (r *ListingRepository) CreateListing(ctx context.Context, bike *domain.AddedBike) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, bike)
	if err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}
	return insertResult(res), nil
}

func (r *ListingRepository) ListListings(ctx context.Context) ([]*domain.AddedBike, error) {
	return r.find(ctx, bson.M{})
}

func (r *ListingRepository) GetListingsBySeller(ctx context.Context, email string) ([]*domain.AddedBike, error) {
	return r.find(ctx, bson.M{"sellerEmail": email})
}

func (r *ListingRepository) find(ctx context.Context, filter bson.M) ([]*domain.AddedBike, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}

	bikes := []*domain.AddedBike{}
	if err := cursor.All(ctx, &bikes); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return bikes, nil
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}
	return deleteResult(res), nil
}

func (r *ListingRepository) SetAdvertise(ctx context.Context, id primitive.ObjectID, flag string) (*domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isAdvertise": flag}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return updateResult(res), nil
}
