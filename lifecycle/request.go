package lifecycle

import (
	"strings"
	"time"

	"github.com/shreya029/foodshare/schema"
)

// ApplyRequestUpdate writes u into r on behalf of caller. Status changes are
// reserved to admins. It reports whether the update approves the request,
// which is the signal to distribute the linked donation.
func ApplyRequestUpdate(r *schema.Request, u schema.RequestUpdate, caller Identity, now time.Time) (bool, error) {
	approved := false

	if u.Status != nil {
		if !u.Status.Valid() {
			return false, ErrInvalidStatus
		}
		if *u.Status != r.Status && !caller.IsAdmin() {
			return false, ErrStatusChangeDenied
		}
		approved = *u.Status == schema.RequestApproved && caller.IsAdmin()
	}

	if u.FoodType != nil {
		r.FoodType = *u.FoodType
	}
	if u.Quantity != nil {
		r.Quantity = *u.Quantity
	}
	if u.PreferredDate != nil {
		r.PreferredDate = *u.PreferredDate
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.DeliveryAddress != nil {
		r.DeliveryAddress = *u.DeliveryAddress
	}
	if u.Status != nil {
		r.Status = *u.Status
	}

	if missing := missingRequestFields(r); len(missing) > 0 {
		return false, MissingFieldsError{Fields: missing}
	}

	r.UpdatedAt = now
	return approved, nil
}

// NewRequest validates and stamps a request created directly by a recipient
func NewRequest(r *schema.Request, caller Identity, now time.Time) error {
	r.Recipient = caller.UserID
	r.Status = schema.RequestPending
	r.CreatedAt = now
	r.UpdatedAt = now

	if missing := missingRequestFields(r); len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}
	return nil
}

func missingRequestFields(r *schema.Request) []string {
	missing := []string{}
	if strings.TrimSpace(r.FoodType) == "" {
		missing = append(missing, "foodType")
	}
	if strings.TrimSpace(r.Quantity) == "" {
		missing = append(missing, "quantity")
	}
	if r.PreferredDate.IsZero() {
		missing = append(missing, "preferredDate")
	}
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		missing = append(missing, "deliveryAddress")
	}
	return missing
}
