package services

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"
)

// AuthService hands out access tokens to registered emails. Knowing a
// registered email is the only credential.
type AuthService struct {
	userRepo     ports.UserRepository
	tokenService ports.TokenService
	logger       ports.LoggerPort
}

func NewAuthService(
	userRepo ports.UserRepository,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to look up user for token", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return "", err
	}
	if user == nil {
		s.logger.Warn("Token requested for unknown user", map[string]interface{}{
			"email": email,
		})
		return "", domain.ErrUserNotFound
	}

	token, err := s.tokenService.GenerateToken(user.Email)
	if err != nil {
		s.logger.Error("Failed to sign token", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return "", err
	}

	s.logger.Info("Token issued", map[string]interface{}{
		"email": email,
	})

	return token, nil
}
