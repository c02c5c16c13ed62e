package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/metrics"
	"github.com/shreya029/foodshare/schema"
)

// Donation - donation records and their reservation lifecycle
type Donation interface {
	CreateDonation(donation *schema.Donation, caller lifecycle.Identity) (*schema.Donation, error)
	GetDonation(id primitive.ObjectID) (*schema.Donation, error)
	ListDonations(page schema.Page) ([]schema.Donation, int64, error)
	ListAvailableDonations() ([]schema.Donation, error)
	ListDonationsByDonor(donor string) ([]schema.Donation, error)
	UpdateDonation(id primitive.ObjectID, caller lifecycle.Identity, update schema.DonationUpdate) (*schema.Donation, error)
	DeleteDonation(id primitive.ObjectID, caller lifecycle.Identity) error
	RequestDonation(id primitive.ObjectID, caller lifecycle.Identity) (*schema.Request, error)
}

func (m *mongoDB) CreateDonation(donation *schema.Donation, caller lifecycle.Identity) (*schema.Donation, error) {
	if err := lifecycle.NewDonation(donation, caller, m.now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DonationCollection).InsertOne(ctx, donation)
	if err != nil {
		return nil, err
	}
	donation.ID = result.InsertedID.(primitive.ObjectID)

	return donation, nil
}

func (m *mongoDB) GetDonation(id primitive.ObjectID) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.findDonation(ctx, id)
}

func (m *mongoDB) findDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	var d schema.Donation
	if err := m.collection(schema.DonationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, lifecycle.ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListDonations returns one page of all donations, newest first, together
// with the total number of donations
func (m *mongoDB) ListDonations(page schema.Page) ([]schema.Donation, int64, error) {
	donations := make([]schema.Donation, 0)
	total, err := m.findPage(schema.DonationCollection, page, &donations)
	if err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

func (m *mongoDB) ListAvailableDonations() ([]schema.Donation, error) {
	return m.findDonations(bson.M{"status": schema.DonationAvailable})
}

func (m *mongoDB) ListDonationsByDonor(donor string) ([]schema.Donation, error) {
	return m.findDonations(bson.M{"donor": donor})
}

func (m *mongoDB) findDonations(query bson.M) ([]schema.Donation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.DonationCollection).Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	donations := make([]schema.Donation, 0)
	if err := decodeAll(ctx, cursor, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateDonation edits the descriptive fields of a donation owned by caller
func (m *mongoDB) UpdateDonation(id primitive.ObjectID, caller lifecycle.Identity, update schema.DonationUpdate) (*schema.Donation, error) {
	var updated *schema.Donation

	err := m.withTransaction(func(ctx context.Context) error {
		d, err := m.findDonation(ctx, id)
		if err != nil {
			return err
		}

		if err := lifecycle.Authorize(d.Donor, caller); err != nil {
			return err
		}

		if err := lifecycle.ApplyDonationUpdate(d, update); err != nil {
			return err
		}
		d.UpdatedAt = m.now()

		result, err := m.collection(schema.DonationCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
			"$set": bson.M{
				"foodName":      d.FoodName,
				"quantity":      d.Quantity,
				"expiryDate":    d.ExpiryDate,
				"description":   d.Description,
				"pickupAddress": d.PickupAddress,
				"updatedAt":     d.UpdatedAt,
			},
		})
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return lifecycle.ErrDonationNotFound
		}

		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteDonation removes a donation owned by caller together with every
// request that references it
func (m *mongoDB) DeleteDonation(id primitive.ObjectID, caller lifecycle.Identity) error {
	var removedRequests int64

	err := m.withTransaction(func(ctx context.Context) error {
		d, err := m.findDonation(ctx, id)
		if err != nil {
			return err
		}

		if err := lifecycle.Authorize(d.Donor, caller); err != nil {
			return err
		}

		result, err := m.collection(schema.DonationCollection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return lifecycle.ErrDonationNotFound
		}

		cascade, err := m.collection(schema.RequestCollection).DeleteMany(ctx, bson.M{"donation": id})
		if err != nil {
			return err
		}
		removedRequests = cascade.DeletedCount
		return nil
	})
	if err != nil {
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("donation %s deleted with %d requests", id.Hex(), removedRequests)
	metrics.ObserveTransition("donation", "delete")
	return nil
}

// RequestDonation reserves an available donation for caller and creates the
// pending request that pairs with the reservation
func (m *mongoDB) RequestDonation(id primitive.ObjectID, caller lifecycle.Identity) (*schema.Request, error) {
	var created *schema.Request

	err := m.withTransaction(func(ctx context.Context) error {
		d, err := m.findDonation(ctx, id)
		if err != nil {
			return err
		}

		now := m.now()
		req, err := lifecycle.Reserve(d, caller, now)
		if err != nil {
			return err
		}

		// the status filter makes a concurrent second reservation lose
		result, err := m.collection(schema.DonationCollection).UpdateOne(ctx,
			bson.M{"_id": id, "status": schema.DonationAvailable},
			bson.M{"$set": bson.M{
				"status":    d.Status,
				"recipient": d.Recipient,
				"updatedAt": now,
			}},
		)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return lifecycle.ErrDonationUnavailable
		}

		inserted, err := m.collection(schema.RequestCollection).InsertOne(ctx, req)
		if err != nil {
			if !m.transactional {
				m.compensateReservation(id, d.Recipient)
			}
			return err
		}
		req.ID = inserted.InsertedID.(primitive.ObjectID)

		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveTransition("donation", "reserve")
	return created, nil
}

// compensateReservation undoes a reservation whose paired request could not
// be written. A failure here is left to the reservation reconciler.
func (m *mongoDB) compensateReservation(id primitive.ObjectID, recipient string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.DonationCollection).UpdateOne(ctx,
		bson.M{"_id": id, "status": schema.DonationReserved, "recipient": recipient},
		releaseUpdate(m.now()),
	)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "donation": id.Hex()}).
			WithError(err).Error("release reservation after failed request insert")
	}
}

func releaseUpdate(now time.Time) bson.M {
	return bson.M{
		"$set":   bson.M{"status": schema.DonationAvailable, "updatedAt": now},
		"$unset": bson.M{"recipient": ""},
	}
}
