package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrValidation    = errors.New("validation error")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidToken  = errors.New("invalid token")
	ErrPaymentFailed = errors.New("payment processor error")
)

// ParseID converts the hex form of a document id, failing with ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
