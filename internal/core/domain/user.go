package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserRole string

const (
	Admin UserRole = "admin"
)

type AccountType string

const (
	Buyer  AccountType = "Buyer"
	Seller AccountType = "Seller"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Role        UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	AccountType AccountType        `bson:"accountType,omitempty" json:"accountType,omitempty" validate:"omitempty,oneof=Buyer Seller"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == Admin
}

func (u *User) IsBuyer() bool {
	return u != nil && u.AccountType == Buyer
}

func (u *User) IsSeller() bool {
	return u != nil && u.AccountType == Seller
}
