package http

import (
	"errors"
	"testing"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(now time.Time) *JWTTokenService {
	svc := NewJWTTokenService("test-secret", 0, &testutil.Logger{})
	svc.now = func() time.Time { return now }
	return svc
}

func TestJWTTokenServiceRoundTrip(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(issued)

	token, err := svc.GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	payload, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if payload.Email != "a@x.com" {
		t.Errorf("Email = %q", payload.Email)
	}
	if !payload.ExpiresAt.Equal(issued.Add(8 * time.Hour)) {
		t.Errorf("ExpiresAt = %v, want issue time + 8h", payload.ExpiresAt)
	}
}

func TestJWTTokenServiceExpiry(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(issued)

	token, err := svc.GenerateToken("a@x.com")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{"just issued", issued, false},
		{"seven hours later", issued.Add(7 * time.Hour), false},
		{"one minute before expiry", issued.Add(8*time.Hour - time.Minute), false},
		{"one second after expiry", issued.Add(8*time.Hour + time.Second), true},
		{"next day", issued.Add(24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			svc.now = func() time.Time { return at }
			_, err := svc.VerifyToken(token)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidToken) {
				t.Errorf("error %v is not ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTTokenServiceRejects(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(now)

	otherKey := NewJWTTokenService("other-secret", time.Hour, &testutil.Logger{})
	foreign, err := otherKey.GenerateToken("a@x.com")
	if err != nil {
		t.Fatal(err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"wrong secret":    foreign,
		"alg none":        unsigned,
		"no expiry claim": noExpiry,
		"no email claim":  noEmail,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
