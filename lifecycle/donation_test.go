package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreya029/foodshare/schema"
)

var (
	now       = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	donor     = Identity{UserID: "alice", Role: RoleDonor, Address: "1 Bakery Lane"}
	recipient = Identity{UserID: "bob", Role: RoleRecipient, Address: "2 Shelter Rd"}
	stranger  = Identity{UserID: "mallory", Role: RoleRecipient, Address: "4 Nowhere"}
	admin     = Identity{UserID: "eve", Role: RoleAdmin}
)

func breadDonation() *schema.Donation {
	return &schema.Donation{
		ID:            primitive.NewObjectID(),
		FoodName:      "Bread",
		Quantity:      "10 loaves",
		ExpiryDate:    now.Add(48 * time.Hour),
		PickupAddress: "1 Bakery Lane",
		Status:        schema.DonationAvailable,
		Donor:         "alice",
	}
}

func TestReserveAvailable(t *testing.T) {
	d := breadDonation()

	req, err := Reserve(d, recipient, now)
	assert.NoError(t, err)
	assert.Equal(t, schema.DonationReserved, d.Status)
	assert.Equal(t, "bob", d.Recipient)
	assert.True(t, Consistent(*d))

	assert.Equal(t, schema.RequestPending, req.Status)
	assert.Equal(t, "bob", req.Recipient)
	assert.Equal(t, d.ID, *req.Donation)
	assert.Equal(t, "Bread", req.FoodType)
	assert.Equal(t, "10 loaves", req.Quantity)
	assert.Equal(t, d.ExpiryDate, req.PreferredDate)
	assert.Equal(t, "2 Shelter Rd", req.DeliveryAddress)
}

func TestReserveUnavailableLeavesDonation(t *testing.T) {
	for _, status := range []schema.DonationStatus{schema.DonationReserved, schema.DonationDistributed} {
		d := breadDonation()
		d.Status = status
		d.Recipient = "carol"

		req, err := Reserve(d, recipient, now)
		assert.Nil(t, req)
		assert.True(t, errors.Is(err, ErrConflict))
		assert.Equal(t, status, d.Status)
		assert.Equal(t, "carol", d.Recipient)
	}
}

func TestReserveNeedsDeliveryAddress(t *testing.T) {
	d := breadDonation()

	_, err := Reserve(d, Identity{UserID: "bob", Role: RoleRecipient}, now)
	var missing MissingFieldsError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"deliveryAddress"}, missing.Fields)
	assert.Equal(t, schema.DonationAvailable, d.Status)
}

func TestDistribute(t *testing.T) {
	d := breadDonation()
	assert.True(t, errors.Is(Distribute(d), ErrNothingToDistribute))
	assert.Equal(t, schema.DonationAvailable, d.Status)

	d.Status = schema.DonationReserved
	d.Recipient = "bob"
	assert.NoError(t, Distribute(d))
	assert.Equal(t, schema.DonationDistributed, d.Status)
	assert.Equal(t, "bob", d.Recipient)

	assert.NoError(t, Distribute(d))
	assert.Equal(t, schema.DonationDistributed, d.Status)

	d.Status = "lost"
	assert.True(t, errors.Is(Distribute(d), ErrInvalidStatus))
}

func TestRelease(t *testing.T) {
	d := breadDonation()
	assert.False(t, Release(d))

	for _, status := range []schema.DonationStatus{schema.DonationReserved, schema.DonationDistributed} {
		d.Status = status
		d.Recipient = "bob"
		assert.True(t, Release(d))
		assert.Equal(t, schema.DonationAvailable, d.Status)
		assert.Empty(t, d.Recipient)
		assert.True(t, Consistent(*d))
	}
}

func TestConsistent(t *testing.T) {
	d := breadDonation()
	assert.True(t, Consistent(*d))

	d.Recipient = "bob"
	assert.False(t, Consistent(*d))

	d.Status = schema.DonationReserved
	assert.True(t, Consistent(*d))

	d.Recipient = ""
	assert.False(t, Consistent(*d))
}

func TestNewDonation(t *testing.T) {
	d := &schema.Donation{
		FoodName:      "Soup",
		Quantity:      "5 litres",
		ExpiryDate:    now.Add(time.Hour),
		PickupAddress: "1 Bakery Lane",
		Status:        schema.DonationDistributed,
		Recipient:     "bob",
	}

	assert.NoError(t, NewDonation(d, donor, now))
	assert.Equal(t, "alice", d.Donor)
	assert.Equal(t, schema.DonationAvailable, d.Status)
	assert.Empty(t, d.Recipient)
	assert.Equal(t, now, d.CreatedAt)
}

func TestApplyDonationUpdate(t *testing.T) {
	d := breadDonation()
	d.Status = schema.DonationReserved
	d.Recipient = "bob"

	assert.True(t, errors.Is(ApplyDonationUpdate(d, schema.DonationUpdate{}), ErrEmptyUpdate))

	name := "Rye Bread"
	assert.NoError(t, ApplyDonationUpdate(d, schema.DonationUpdate{FoodName: &name}))
	assert.Equal(t, "Rye Bread", d.FoodName)
	assert.Equal(t, schema.DonationReserved, d.Status)
	assert.Equal(t, "bob", d.Recipient)

	blank := " "
	err := ApplyDonationUpdate(d, schema.DonationUpdate{PickupAddress: &blank})
	assert.True(t, errors.Is(err, ErrValidation))
}

// TestBreadScenario follows a donation from posting to hand over
func TestBreadScenario(t *testing.T) {
	d := &schema.Donation{
		FoodName:      "Bread",
		Quantity:      "10 loaves",
		ExpiryDate:    now.Add(48 * time.Hour),
		PickupAddress: "1 Bakery Lane",
	}
	assert.NoError(t, NewDonation(d, donor, now))

	req, err := Reserve(d, recipient, now)
	assert.NoError(t, err)

	approvedStatus := schema.RequestApproved
	approved, err := ApplyRequestUpdate(req, schema.RequestUpdate{Status: &approvedStatus}, admin, now)
	assert.NoError(t, err)
	assert.True(t, approved)

	assert.NoError(t, Distribute(d))
	assert.Equal(t, schema.DonationDistributed, d.Status)
	assert.Equal(t, "bob", d.Recipient)
	assert.Equal(t, schema.RequestApproved, req.Status)
}
