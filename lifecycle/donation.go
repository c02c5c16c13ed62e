package lifecycle

import (
	"strings"
	"time"

	"github.com/shreya029/foodshare/schema"
)

// Reserve moves an available donation to reserved for the caller and returns
// the pending request that pairs with it. The donation is modified in place
// only on success.
func Reserve(d *schema.Donation, caller Identity, now time.Time) (*schema.Request, error) {
	switch d.Status {
	case schema.DonationAvailable:
	case schema.DonationReserved, schema.DonationDistributed:
		return nil, ErrDonationUnavailable
	default:
		return nil, ErrInvalidStatus
	}

	if strings.TrimSpace(caller.Address) == "" {
		return nil, MissingFieldsError{Fields: []string{"deliveryAddress"}}
	}

	donationID := d.ID
	req := &schema.Request{
		FoodType:        d.FoodName,
		Quantity:        d.Quantity,
		PreferredDate:   d.ExpiryDate,
		DeliveryAddress: caller.Address,
		Status:          schema.RequestPending,
		Recipient:       caller.UserID,
		Donation:        &donationID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	d.Status = schema.DonationReserved
	d.Recipient = caller.UserID

	return req, nil
}

// Distribute marks a reserved donation as handed over. A distributed
// donation stays distributed.
func Distribute(d *schema.Donation) error {
	switch d.Status {
	case schema.DonationReserved:
		d.Status = schema.DonationDistributed
		return nil
	case schema.DonationDistributed:
		return nil
	case schema.DonationAvailable:
		return ErrNothingToDistribute
	}
	return ErrInvalidStatus
}

// Release returns a donation to available and clears its recipient. It
// reports whether anything changed.
func Release(d *schema.Donation) bool {
	switch d.Status {
	case schema.DonationAvailable:
		if d.Recipient == "" {
			return false
		}
	case schema.DonationReserved, schema.DonationDistributed:
	}

	d.Status = schema.DonationAvailable
	d.Recipient = ""
	return true
}

// Consistent checks that a donation has a recipient exactly when its status
// requires one
func Consistent(d schema.Donation) bool {
	return d.Status.Valid() && d.Status.HasRecipient() == (d.Recipient != "")
}

// NewDonation validates and stamps a donation posted by caller
func NewDonation(d *schema.Donation, caller Identity, now time.Time) error {
	d.Donor = caller.UserID
	d.Status = schema.DonationAvailable
	d.Recipient = ""
	d.CreatedAt = now
	d.UpdatedAt = now

	if missing := missingDonationFields(d); len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}
	return nil
}

// ApplyDonationUpdate writes the descriptive fields of u into d. Status and
// recipient are never touched here.
func ApplyDonationUpdate(d *schema.Donation, u schema.DonationUpdate) error {
	if u.Empty() {
		return ErrEmptyUpdate
	}

	if u.FoodName != nil {
		d.FoodName = *u.FoodName
	}
	if u.Quantity != nil {
		d.Quantity = *u.Quantity
	}
	if u.ExpiryDate != nil {
		d.ExpiryDate = *u.ExpiryDate
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.PickupAddress != nil {
		d.PickupAddress = *u.PickupAddress
	}

	if missing := missingDonationFields(d); len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}
	return nil
}

func missingDonationFields(d *schema.Donation) []string {
	missing := []string{}
	if strings.TrimSpace(d.FoodName) == "" {
		missing = append(missing, "foodName")
	}
	if strings.TrimSpace(d.Quantity) == "" {
		missing = append(missing, "quantity")
	}
	if d.ExpiryDate.IsZero() {
		missing = append(missing, "expiryDate")
	}
	if strings.TrimSpace(d.PickupAddress) == "" {
		missing = append(missing, "pickupAddress")
	}
	return missing
}
