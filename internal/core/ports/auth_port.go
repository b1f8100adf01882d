package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
)

type TokenService interface {
	GenerateToken(email string) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

type AuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
}
