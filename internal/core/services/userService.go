package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type UserService struct {
	userRepo ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewUserService(
	userRepo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	result, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error": err.Error(),
			"email": user.Email,
		})
		return nil, err
	}

	s.logger.Info("User created successfully", map[string]interface{}{
		"user_id":      result.InsertedID,
		"email":        user.Email,
		"account_type": user.AccountType,
	})

	return result, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved users", map[string]interface{}{
		"users_count": len(users),
	})

	return users, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get user", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		s.logger.Error("Invalid user id", map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	result, err := s.userRepo.DeleteUser(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to delete user", map[string]interface{}{
			"error":   err.Error(),
			"user_id": id,
		})
		return nil, err
	}

	s.logger.Info("User deleted", map[string]interface{}{
		"user_id":       id,
		"deleted_count": result.DeletedCount,
	})

	return result, nil
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) IsBuyer(ctx context.Context, email string) (bool, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsBuyer(), nil
}

func (s *UserService) IsSeller(ctx context.Context, email string) (bool, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsSeller(), nil
}
