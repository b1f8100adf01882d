package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AdvertiseFlag = "advertise"

// AddedBike is a seller's listing.
type AddedBike struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SellerEmail   string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty" validate:"required,email"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	CategoryID    string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty" validate:"gte=0"`
	ResalePrice   float64            `bson:"resalePrice,omitempty" json:"resalePrice,omitempty" validate:"gte=0"`
	YearsOfUse    int                `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty" validate:"gte=0"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	PostedAt      *time.Time         `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
	IsAdvertise   string             `bson:"isAdvertise,omitempty" json:"isAdvertise,omitempty"`
}
