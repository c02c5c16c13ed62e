package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shreya029/foodshare/schema"
)

// ReconcileGrace keeps the reconciler away from reservations whose request
// insert may still be in flight
const ReconcileGrace = time.Minute

// Reconciler - repair of multi-document sequences that did not complete
type Reconciler interface {
	ReconcileReservations() (int64, error)
}

// ReconcileReservations releases every donation that holds a recipient but
// is no longer referenced by any request. Running it twice is harmless.
func (m *mongoDB) ReconcileReservations() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := m.now()
	c := m.collection(schema.DonationCollection)

	cursor, err := c.Aggregate(ctx, orphanedReservationPipeline(now.Add(-ReconcileGrace)))
	if err != nil {
		return 0, err
	}

	var orphans []struct {
		ID interface{} `bson:"_id"`
	}
	if err := decodeAll(ctx, cursor, &orphans); err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	ids := make(bson.A, 0, len(orphans))
	for _, o := range orphans {
		ids = append(ids, o.ID)
	}

	result, err := c.UpdateMany(ctx,
		bson.M{
			"_id":    bson.M{"$in": ids},
			"status": bson.M{"$in": bson.A{schema.DonationReserved, schema.DonationDistributed}},
		},
		releaseUpdate(now),
	)
	if err != nil {
		return 0, err
	}

	if result.ModifiedCount > 0 {
		log.WithField("prefix", mongoLogPrefix).Warnf("released %d orphaned reservations", result.ModifiedCount)
	}

	return result.ModifiedCount, nil
}
