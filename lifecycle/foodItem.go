package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/shreya029/foodshare/schema"
)

var validUnits = map[schema.FoodUnit]bool{
	schema.UnitKilogram:   true,
	schema.UnitGram:       true,
	schema.UnitPound:      true,
	schema.UnitOunce:      true,
	schema.UnitLitre:      true,
	schema.UnitMillilitre: true,
	schema.UnitUnits:      true,
}

// NewFoodItem validates and stamps a food item posted by caller
func NewFoodItem(item *schema.FoodItem, caller Identity, now time.Time) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Donor = caller.UserID
	item.Status = schema.FoodItemAvailable
	item.Recipient = ""
	item.CollectedAt = nil
	item.CreatedAt = now

	missing := []string{}
	if item.Name == "" {
		missing = append(missing, "name")
	}
	if item.Category == "" {
		missing = append(missing, "category")
	}
	if item.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if item.Unit == "" {
		missing = append(missing, "unit")
	}
	if item.ExpiryDate.IsZero() {
		missing = append(missing, "expiryDate")
	}
	if item.CollectionTime.IsZero() {
		missing = append(missing, "collectionTime")
	}
	if strings.TrimSpace(item.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}

	if !item.Category.Valid() {
		return fmt.Errorf("category %q: %w", item.Category, ErrValidation)
	}
	if !validUnits[item.Unit] {
		return fmt.Errorf("unit %q: %w", item.Unit, ErrValidation)
	}
	if *item.Quantity < 0 {
		return fmt.Errorf("quantity must be at least 0: %w", ErrValidation)
	}
	return nil
}

// Collect confirms the pickup of a food item
func Collect(item *schema.FoodItem, now time.Time) error {
	switch item.Status {
	case schema.FoodItemAvailable, schema.FoodItemReserved:
	case schema.FoodItemCollected:
		return ErrAlreadyCollected
	case schema.FoodItemExpired, schema.FoodItemDonated:
		return ErrNotCollectable
	default:
		return ErrInvalidStatus
	}

	item.Status = schema.FoodItemCollected
	item.CollectedAt = &now
	return nil
}

// Expired reports whether an available item has passed its expiry date
func Expired(item schema.FoodItem, now time.Time) bool {
	return item.Status == schema.FoodItemAvailable && item.ExpiryDate.Before(now)
}
