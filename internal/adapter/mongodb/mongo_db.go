package mongodb

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CategoriesCollection = "categories"
	OrdersCollection     = "bikeOrders"
	UsersCollection      = "users"
	ListingsCollection   = "addedBikes"
	PaymentsCollection   = "payments"
)

type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials the cluster with the stable server API and pings the primary.
// Embedded documents decode as maps so seeded fields serialize as JSON objects.
func Connect(ctx context.Context, uri, dbName string) (*Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Database{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

func insertResult(res *mongo.InsertOneResult) *domain.InsertResult {
	result := &domain.InsertResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	} else if res.InsertedID != nil {
		result.InsertedID = fmt.Sprintf("%v", res.InsertedID)
	}
	return result
}

func updateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	result := &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := oid.Hex()
		result.UpsertedID = &hex
	}
	return result
}

func deleteResult(res *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
