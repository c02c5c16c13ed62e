package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FoodItemCollection = "fooditems"

	// ExpiringSoonWindow is the look-ahead used by the food statistics
	ExpiringSoonWindow = 7 * 24 * time.Hour
)

type FoodItemStatus string

const (
	FoodItemAvailable FoodItemStatus = "available"
	FoodItemReserved  FoodItemStatus = "reserved"
	FoodItemCollected FoodItemStatus = "collected"
	FoodItemExpired   FoodItemStatus = "expired"
	FoodItemDonated   FoodItemStatus = "donated"
)

var FoodItemStatuses = []FoodItemStatus{
	FoodItemAvailable,
	FoodItemReserved,
	FoodItemCollected,
	FoodItemExpired,
	FoodItemDonated,
}

func (s FoodItemStatus) Valid() bool {
	for _, v := range FoodItemStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type FoodCategory string

const (
	CategoryPerishable    FoodCategory = "Perishable"
	CategoryNonPerishable FoodCategory = "Non-Perishable"
	CategoryDairy         FoodCategory = "Dairy"
	CategoryMeat          FoodCategory = "Meat"
	CategoryProduce       FoodCategory = "Produce"
	CategoryBakery        FoodCategory = "Bakery"
	CategoryOther         FoodCategory = "Other"
)

var FoodCategories = []FoodCategory{
	CategoryPerishable,
	CategoryNonPerishable,
	CategoryDairy,
	CategoryMeat,
	CategoryProduce,
	CategoryBakery,
	CategoryOther,
}

func (c FoodCategory) Valid() bool {
	for _, v := range FoodCategories {
		if v == c {
			return true
		}
	}
	return false
}

type FoodUnit string

const (
	UnitKilogram   FoodUnit = "kg"
	UnitGram       FoodUnit = "g"
	UnitPound      FoodUnit = "lb"
	UnitOunce      FoodUnit = "oz"
	UnitLitre      FoodUnit = "l"
	UnitMillilitre FoodUnit = "ml"
	UnitUnits      FoodUnit = "units"
)

// FoodItem is an inventory-style food record
type FoodItem struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Category       FoodCategory       `json:"category" bson:"category"`
	Quantity       *float64           `json:"quantity" bson:"quantity"`
	Unit           FoodUnit           `json:"unit" bson:"unit"`
	ExpiryDate     time.Time          `json:"expiryDate" bson:"expiryDate"`
	CollectionTime time.Time          `json:"collectionTime" bson:"collectionTime"`
	Status         FoodItemStatus     `json:"status" bson:"status"`
	Donor          string             `json:"donor" bson:"donor"`
	Recipient      string             `json:"recipient,omitempty" bson:"recipient,omitempty"`
	Location       string             `json:"location" bson:"location"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CollectedAt    *time.Time         `json:"collectedAt,omitempty" bson:"collectedAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// FoodItemFilter narrows a food item listing. Empty fields match everything.
type FoodItemFilter struct {
	Status   FoodItemStatus
	Category FoodCategory
}

// GroupCount is one bucket of a group-by aggregation
type GroupCount struct {
	ID    string `json:"_id" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// FoodStats is a point-in-time snapshot over the food item collection
type FoodStats struct {
	TotalItems     int64        `json:"totalItems"`
	AvailableItems int64        `json:"availableItems"`
	ExpiringSoon   int64        `json:"expiringSoon"`
	CollectedItems int64        `json:"collectedItems"`
	ExpiredItems   int64        `json:"expiredItems"`
	ByStatus       []GroupCount `json:"byStatus"`
	ByCategory     []GroupCount `json:"byCategory"`
}
