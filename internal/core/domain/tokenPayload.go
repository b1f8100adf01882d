package domain

import "time"

type TokenPayload struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
