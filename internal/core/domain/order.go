package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// BikeOrder is a buyer's booking of a listed bike. Paid flips to true once,
// when a payment referencing the order is recorded.
type BikeOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BikeID        string             `bson:"bikeId,omitempty" json:"bikeId,omitempty"`
	BikeName      string             `bson:"bikeName,omitempty" json:"bikeName,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	BuyerName     string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Price         float64            `bson:"price" json:"price" validate:"gte=0"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
