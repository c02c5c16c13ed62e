package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestCollection = "requests"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestFulfilled RequestStatus = "fulfilled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestFulfilled:
		return true
	}
	return false
}

// Request is a recipient's ask for food, optionally linked to a donation or
// a food item
type Request struct {
	ID              primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	FoodType        string              `json:"foodType" bson:"foodType"`
	Quantity        string              `json:"quantity" bson:"quantity"`
	PreferredDate   time.Time           `json:"preferredDate" bson:"preferredDate"`
	Description     string              `json:"description,omitempty" bson:"description,omitempty"`
	DeliveryAddress string              `json:"deliveryAddress" bson:"deliveryAddress"`
	Status          RequestStatus       `json:"status" bson:"status"`
	Recipient       string              `json:"recipient" bson:"recipient"`
	Donation        *primitive.ObjectID `json:"donation,omitempty" bson:"donation,omitempty"`
	FoodItem        *primitive.ObjectID `json:"foodItem,omitempty" bson:"foodItem,omitempty"`
	CreatedAt       time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// RequestDetail is a request with its linked donation embedded
type RequestDetail struct {
	Request        `bson:",inline"`
	DonationDetail *Donation `json:"donationDetail,omitempty" bson:"donationDetail,omitempty"`
}

// RequestUpdate carries the fields of a request that may be changed. Nil
// fields are left untouched.
type RequestUpdate struct {
	FoodType        *string        `json:"foodType"`
	Quantity        *string        `json:"quantity"`
	PreferredDate   *time.Time     `json:"preferredDate"`
	Description     *string        `json:"description"`
	DeliveryAddress *string        `json:"deliveryAddress"`
	Status          *RequestStatus `json:"status"`
}
