package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingService struct {
	listingRepo ports.ListingRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	now         func() time.Time
}

func NewListingService(
	listingRepo ports.ListingRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		logger:      logger,
		validate:    validate,
		now:         time.Now,
	}
}

func (s *ListingService) CreateListing(ctx context.Context, bike *domain.AddedBike) (*domain.InsertResult, error) {
	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Listing validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	bike.ID = primitive.NilObjectID
	if bike.PostedAt == nil {
		postedAt := s.now().UTC()
		bike.PostedAt = &postedAt
	}

	result, err := s.listingRepo.CreateListing(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create listing", map[string]interface{}{
			"error":        err.Error(),
			"seller_email": bike.SellerEmail,
		})
		return nil, err
	}

	s.logger.Info("Listing created successfully", map[string]interface{}{
		"listing_id":   result.InsertedID,
		"seller_email": bike.SellerEmail,
	})

	return result, nil
}

func (s *ListingService) ListListings(ctx context.Context) ([]*domain.AddedBike, error) {
	bikes, err := s.listingRepo.ListListings(ctx)
	if err != nil {
		s.logger.Error("Failed to list listings", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return bikes, nil
}

func (s *ListingService) GetListingsBySeller(ctx context.Context, email string) ([]*domain.AddedBike, error) {
	bikes, err := s.listingRepo.GetListingsBySeller(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get listings", map[string]interface{}{
			"error":        err.Error(),
			"seller_email": email,
		})
		return nil, err
	}

	s.logger.Info("Retrieved listings for seller", map[string]interface{}{
		"seller_email":   email,
		"listings_count": len(bikes),
	})

	return bikes, nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		s.logger.Error("Invalid listing id", map[string]interface{}{
			"listing_id": id,
		})
		return nil, err
	}

	result, err := s.listingRepo.DeleteListing(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to delete listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": id,
		})
		return nil, err
	}

	s.logger.Info("Listing deleted", map[string]interface{}{
		"listing_id":    id,
		"deleted_count": result.DeletedCount,
	})

	return result, nil
}

// AdvertiseListing flags the listing for the advertised carousel. Applying
// it again is a no-op.
func (s *ListingService) AdvertiseListing(ctx context.Context, id string) (*domain.UpdateResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		s.logger.Error("Invalid listing id", map[string]interface{}{
			"listing_id": id,
		})
		return nil, err
	}

	result, err := s.listingRepo.SetAdvertise(ctx, oid, domain.AdvertiseFlag)
	if err != nil {
		s.logger.Error("Failed to advertise listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": id,
		})
		return nil, err
	}

	s.logger.Info("Listing advertised", map[string]interface{}{
		"listing_id":     id,
		"matched_count":  result.MatchedCount,
		"upserted_count": result.UpsertedCount,
	})

	return result, nil
}
