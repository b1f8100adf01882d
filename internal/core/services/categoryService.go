package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"
)

const categoriesCacheKey = "categories:all"

type CategoryService struct {
	categoryRepo ports.CategoryRepository
	logger       ports.LoggerPort
	cache        ports.CachePort
	cacheTTL     time.Duration
}

func NewCategoryService(
	categoryRepo ports.CategoryRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var cached []*domain.Category
	if s.fromCache(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.toCache(ctx, categoriesCacheKey, categories)

	s.logger.Info("Retrieved categories", map[string]interface{}{
		"categories_count": len(categories),
	})

	return categories, nil
}

// GetCategory returns nil without an error when no category has the id.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		s.logger.Error("Invalid category id", map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	cacheKey := fmt.Sprintf("category:%s", oid.Hex())
	var cached domain.Category
	if s.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to get category", map[string]interface{}{
			"error":       err.Error(),
			"category_id": id,
		})
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	s.toCache(ctx, cacheKey, category)

	return category, nil
}

func (s *CategoryService) fromCache(ctx context.Context, key string, dst interface{}) bool {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("Failed to decode cached value", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to evict cached value", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
		return false
	}
	s.logger.Debug("Cache hit", map[string]interface{}{
		"key": key,
	})
	return true
}

func (s *CategoryService) toCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to marshal value for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache value", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}
