package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is written once per successful checkout and never changed.
// OrderedBikeID holds the hex id of the BikeOrder that was paid.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderedBikeID string             `bson:"orderedbikeId" json:"orderedbikeId" validate:"required"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty" validate:"gte=0"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}
