package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/metrics"
	"github.com/shreya029/foodshare/schema"
)

// Request - recipient requests and the donation transitions they drive
type Request interface {
	CreateRequest(request *schema.Request, caller lifecycle.Identity) (*schema.Request, error)
	GetRequest(id primitive.ObjectID, caller lifecycle.Identity) (*schema.RequestDetail, error)
	ListRequests(page schema.Page) ([]schema.Request, int64, error)
	ListRequestsByRecipient(recipient string) ([]schema.RequestDetail, error)
	UpdateRequest(id primitive.ObjectID, caller lifecycle.Identity, update schema.RequestUpdate) (*schema.Request, error)
	DeleteRequest(id primitive.ObjectID, caller lifecycle.Identity) error
}

// CreateRequest stores a free-standing request. A donation can only be
// linked through RequestDonation; a food item link must resolve.
func (m *mongoDB) CreateRequest(request *schema.Request, caller lifecycle.Identity) (*schema.Request, error) {
	request.Donation = nil
	if err := lifecycle.NewRequest(request, caller, m.now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if request.FoodItem != nil {
		if _, err := m.findFoodItem(ctx, *request.FoodItem); err != nil {
			return nil, err
		}
	}

	result, err := m.collection(schema.RequestCollection).InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	return request, nil
}

func (m *mongoDB) findRequest(ctx context.Context, id primitive.ObjectID) (*schema.Request, error) {
	var r schema.Request
	if err := m.collection(schema.RequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, lifecycle.ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

// GetRequest returns a request with its donation embedded. Only the
// recipient who made it and admins may read it.
func (m *mongoDB) GetRequest(id primitive.ObjectID, caller lifecycle.Identity) (*schema.RequestDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.RequestCollection).Aggregate(ctx, requestDetailPipeline(bson.M{"_id": id}))
	if err != nil {
		return nil, err
	}

	details := make([]schema.RequestDetail, 0)
	if err := decodeAll(ctx, cursor, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, lifecycle.ErrRequestNotFound
	}

	if err := lifecycle.Authorize(details[0].Recipient, caller); err != nil {
		return nil, err
	}

	return &details[0], nil
}

func (m *mongoDB) ListRequests(page schema.Page) ([]schema.Request, int64, error) {
	requests := make([]schema.Request, 0)
	total, err := m.findPage(schema.RequestCollection, page, &requests)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (m *mongoDB) ListRequestsByRecipient(recipient string) ([]schema.RequestDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.RequestCollection).Aggregate(ctx, requestDetailPipeline(bson.M{"recipient": recipient}))
	if err != nil {
		return nil, err
	}

	details := make([]schema.RequestDetail, 0)
	if err := decodeAll(ctx, cursor, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// UpdateRequest edits a request. An admin approval of a request linked to a
// donation distributes that donation in the same unit of work. The request
// is written first; without transactions a failed distribution puts the
// request back as it was.
func (m *mongoDB) UpdateRequest(id primitive.ObjectID, caller lifecycle.Identity, update schema.RequestUpdate) (*schema.Request, error) {
	var (
		updated     *schema.Request
		distributed bool
	)

	err := m.withTransaction(func(ctx context.Context) error {
		r, err := m.findRequest(ctx, id)
		if err != nil {
			return err
		}

		if err := lifecycle.Authorize(r.Recipient, caller); err != nil {
			return err
		}

		previous := *r
		now := m.now()
		approved, err := lifecycle.ApplyRequestUpdate(r, update, caller, now)
		if err != nil {
			return err
		}

		if err := m.writeRequest(ctx, r); err != nil {
			return err
		}

		if approved && r.Donation != nil {
			if err := m.distributeDonation(ctx, *r.Donation); err != nil {
				if !m.transactional {
					m.compensateRequestUpdate(&previous, r.UpdatedAt)
				}
				return err
			}
			distributed = true
		}

		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if distributed {
		metrics.ObserveTransition("donation", "distribute")
	}
	return updated, nil
}

func (m *mongoDB) writeRequest(ctx context.Context, r *schema.Request) error {
	result, err := m.collection(schema.RequestCollection).UpdateOne(ctx, bson.M{"_id": r.ID}, requestSet(r))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return lifecycle.ErrRequestNotFound
	}
	return nil
}

// compensateRequestUpdate restores the request fields overwritten at
// writtenAt, unless another edit has landed since
func (m *mongoDB) compensateRequestUpdate(previous *schema.Request, writtenAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.RequestCollection).UpdateOne(ctx,
		bson.M{"_id": previous.ID, "updatedAt": writtenAt},
		requestSet(previous),
	)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "request": previous.ID.Hex()}).
			WithError(err).Error("restore request after failed distribution")
	}
}

func requestSet(r *schema.Request) bson.M {
	return bson.M{
		"$set": bson.M{
			"foodType":        r.FoodType,
			"quantity":        r.Quantity,
			"preferredDate":   r.PreferredDate,
			"description":     r.Description,
			"deliveryAddress": r.DeliveryAddress,
			"status":          r.Status,
			"updatedAt":       r.UpdatedAt,
		},
	}
}

func (m *mongoDB) distributeDonation(ctx context.Context, id primitive.ObjectID) error {
	d, err := m.findDonation(ctx, id)
	if err != nil {
		return err
	}

	previous := d.Status
	if err := lifecycle.Distribute(d); err != nil {
		return err
	}
	if previous == d.Status {
		return nil
	}

	result, err := m.collection(schema.DonationCollection).UpdateOne(ctx,
		bson.M{"_id": id, "status": previous},
		bson.M{"$set": bson.M{"status": d.Status, "updatedAt": m.now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return lifecycle.ErrConcurrentUpdate
	}
	return nil
}

// DeleteRequest removes a request and returns its donation, if any, to
// available whatever state the request was in
func (m *mongoDB) DeleteRequest(id primitive.ObjectID, caller lifecycle.Identity) error {
	var released bool

	err := m.withTransaction(func(ctx context.Context) error {
		r, err := m.findRequest(ctx, id)
		if err != nil {
			return err
		}

		if err := lifecycle.Authorize(r.Recipient, caller); err != nil {
			return err
		}

		result, err := m.collection(schema.RequestCollection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return lifecycle.ErrRequestNotFound
		}

		if r.Donation == nil {
			return nil
		}

		released, err = m.releaseDonation(ctx, *r.Donation)
		return err
	})
	if err != nil {
		return err
	}

	if released {
		metrics.ObserveTransition("donation", "release")
	}
	return nil
}

// releaseDonation returns a donation to available. A donation that is
// already gone or already available is left alone.
func (m *mongoDB) releaseDonation(ctx context.Context, id primitive.ObjectID) (bool, error) {
	d, err := m.findDonation(ctx, id)
	if err != nil {
		if err == lifecycle.ErrDonationNotFound {
			log.WithField("prefix", mongoLogPrefix).Warnf("request referenced missing donation %s", id.Hex())
			return false, nil
		}
		return false, err
	}

	if !lifecycle.Release(d) {
		return false, nil
	}

	result, err := m.collection(schema.DonationCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		releaseUpdate(m.now()),
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
