package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DonationCollection = "donations"
)

type DonationStatus string

const (
	DonationAvailable   DonationStatus = "available"
	DonationReserved    DonationStatus = "reserved"
	DonationDistributed DonationStatus = "distributed"
)

// Valid reports whether s is one of the known donation states
func (s DonationStatus) Valid() bool {
	switch s {
	case DonationAvailable, DonationReserved, DonationDistributed:
		return true
	}
	return false
}

// HasRecipient reports whether a donation in state s must carry a recipient
func (s DonationStatus) HasRecipient() bool {
	switch s {
	case DonationReserved, DonationDistributed:
		return true
	case DonationAvailable:
		return false
	}
	return false
}

// Donation is a donor-posted offer of food
type Donation struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FoodName      string             `json:"foodName" bson:"foodName"`
	Quantity      string             `json:"quantity" bson:"quantity"`
	ExpiryDate    time.Time          `json:"expiryDate" bson:"expiryDate"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	PickupAddress string             `json:"pickupAddress" bson:"pickupAddress"`
	Status        DonationStatus     `json:"status" bson:"status"`
	Donor         string             `json:"donor" bson:"donor"`
	Recipient     string             `json:"recipient,omitempty" bson:"recipient,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DonationUpdate carries the descriptive fields a donor may edit. Nil fields
// are left untouched.
type DonationUpdate struct {
	FoodName      *string    `json:"foodName"`
	Quantity      *string    `json:"quantity"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	Description   *string    `json:"description"`
	PickupAddress *string    `json:"pickupAddress"`
}

// Empty reports whether the update changes nothing
func (u DonationUpdate) Empty() bool {
	return u.FoodName == nil && u.Quantity == nil && u.ExpiryDate == nil &&
		u.Description == nil && u.PickupAddress == nil
}
