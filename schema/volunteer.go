package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VolunteerCollection = "volunteers"
)

type Volunteer struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FullName         string             `json:"fullName" bson:"fullName"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	City             string             `json:"city" bson:"city"`
	Roles            string             `json:"roles" bson:"roles"`
	Availability     string             `json:"availability" bson:"availability"`
	Vehicle          string             `json:"vehicle" bson:"vehicle"`
	Motivation       string             `json:"motivation" bson:"motivation"`
	EmergencyContact string             `json:"emergencyContact" bson:"emergencyContact"`
	Stars            int                `json:"stars" bson:"stars"`
	Rewards          []string           `json:"rewards" bson:"rewards"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
