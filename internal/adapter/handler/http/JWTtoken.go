package http

import (
	"fmt"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenDuration = 8 * time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
	now       func() time.Time
}

func NewJWTTokenService(secretKey string, duration time.Duration, logger ports.LoggerPort) *JWTTokenService {
	if duration <= 0 {
		duration = DefaultTokenDuration
	}
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  duration,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateToken signs an HS256 token carrying the email, valid for the
// configured duration.
func (j *JWTTokenService) GenerateToken(email string) (string, error) {
	now := j.now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	claims := &tokenClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		j.logger.Warn("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsedToken.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: email claim missing", domain.ErrInvalidToken)
	}

	payload := &domain.TokenPayload{
		Email: claims.Email,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}

	return payload, nil
}
