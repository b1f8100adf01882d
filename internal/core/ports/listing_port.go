package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingRepository interface {
	CreateListing(ctx context.Context, bike *domain.AddedBike) (*domain.InsertResult, error)
	ListListings(ctx context.Context) ([]*domain.AddedBike, error)
	GetListingsBySeller(ctx context.Context, email string) ([]*domain.AddedBike, error)
	DeleteListing(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
	// SetAdvertise sets the advertise flag, inserting a bare document when
	// the id does not exist yet.
	SetAdvertise(ctx context.Context, id primitive.ObjectID, flag string) (*domain.UpdateResult, error)
}

type ListingService interface {
	CreateListing(ctx context.Context, bike *domain.AddedBike) (*domain.InsertResult, error)
	ListListings(ctx context.Context) ([]*domain.AddedBike, error)
	GetListingsBySeller(ctx context.Context, email string) ([]*domain.AddedBike, error)
	DeleteListing(ctx context.Context, id string) (*domain.DeleteResult, error)
	AdvertiseListing(ctx context.Context, id string) (*domain.UpdateResult, error)
}
