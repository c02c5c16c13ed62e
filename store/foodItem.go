package store

import (
	"context"
	"fmt"
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

// FoodItem - inventory style food records
type FoodItem interface {
	CreateFoodItem(item *schema.FoodItem, caller lifecycle.Identity) (*schema.FoodItem, error)
	GetFoodItem(id primitive.ObjectID) (*schema.FoodItem, error)
	ListFoodItems(filter schema.FoodItemFilter) ([]schema.FoodItem, error)
	FoodItemStats(now time.Time) (*schema.FoodStats, error)
	CollectFoodItem(id primitive.ObjectID, caller lifecycle.Identity) (*schema.FoodItem, error)
	DeleteFoodItem(id primitive.ObjectID, caller lifecycle.Identity) error
	ExpireFoodItems(now time.Time) (int64, error)
}

func (m *mongoDB) CreateFoodItem(item *schema.FoodItem, caller lifecycle.Identity) (*schema.FoodItem, error) {
	if err := lifecycle.NewFoodItem(item, caller, m.now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.FoodItemCollection).InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)

	return item, nil
}

func (m *mongoDB) GetFoodItem(id primitive.ObjectID) (*schema.FoodItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.findFoodItem(ctx, id)
}

func (m *mongoDB) findFoodItem(ctx context.Context, id primitive.ObjectID) (*schema.FoodItem, error) {
	var item schema.FoodItem
	if err := m.collection(schema.FoodItemCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, lifecycle.ErrFoodItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func foodItemQuery(filter schema.FoodItemFilter) (bson.M, error) {
	query := bson.M{}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, fmt.Errorf("status %q: %w", filter.Status, lifecycle.ErrInvalidStatus)
		}
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		if !filter.Category.Valid() {
			return nil, fmt.Errorf("category %q: %w", filter.Category, lifecycle.ErrValidation)
		}
		query["category"] = filter.Category
	}
	return query, nil
}

// ListFoodItems returns the items matching filter, soonest expiry first
func (m *mongoDB) ListFoodItems(filter schema.FoodItemFilter) ([]schema.FoodItem, error) {
	query, err := foodItemQuery(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.FoodItemCollection).Find(ctx, query, options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}}))
	if err != nil {
		return nil, err
	}

	items := make([]schema.FoodItem, 0)
	if err := decodeAll(ctx, cursor, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FoodItemStats summarises the collection as of now
func (m *mongoDB) FoodItemStats(now time.Time) (*schema.FoodStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.FoodItemCollection).Aggregate(ctx, foodStatsPipeline(now))
	if err != nil {
		return nil, err
	}

	var facets []foodStatsFacet
	if err := decodeAll(ctx, cursor, &facets); err != nil {
		return nil, err
	}

	var stats schema.FoodStats
	if len(facets) == 0 {
		stats = foodStatsFacet{}.stats()
	} else {
		stats = facets[0].stats()
	}
	return &stats, nil
}

// CollectFoodItem confirms the pickup of an item. The caller becomes the
// recipient when none was recorded and the caller is not the donor.
func (m *mongoDB) CollectFoodItem(id primitive.ObjectID, caller lifecycle.Identity) (*schema.FoodItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	item, err := m.findFoodItem(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := item.Status
	if err := lifecycle.Collect(item, m.now()); err != nil {
		return nil, err
	}
	if item.Recipient == "" && caller.UserID != item.Donor {
		item.Recipient = caller.UserID
	}

	set := bson.M{
		"status":      item.Status,
		"collectedAt": item.CollectedAt,
	}
	if item.Recipient != "" {
		set["recipient"] = item.Recipient
	}

	result, err := m.collection(schema.FoodItemCollection).UpdateOne(ctx,
		bson.M{"_id": id, "status": previous},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, lifecycle.ErrConcurrentUpdate
	}

	metrics.ObserveTransition("food_item", "collect")
	return item, nil
}

// DeleteFoodItem removes an item owned by caller and every request linked
// to it
func (m *mongoDB) DeleteFoodItem(id primitive.ObjectID, caller lifecycle.Identity) error {
	return m.withTransaction(func(ctx context.Context) error {
		item, err := m.findFoodItem(ctx, id)
		if err != nil {
			return err
		}

		if err := lifecycle.Authorize(item.Donor, caller); err != nil {
			return err
		}

		result, err := m.collection(schema.FoodItemCollection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return lifecycle.ErrFoodItemNotFound
		}

		cascade, err := m.collection(schema.RequestCollection).DeleteMany(ctx, bson.M{"foodItem": id})
		if err != nil {
			return err
		}

		log.WithField("prefix", mongoLogPrefix).Debugf("food item %s deleted with %d requests", id.Hex(), cascade.DeletedCount)
		return nil
	})
}

// ExpireFoodItems marks every available item past its expiry date as
// expired and returns how many were changed
func (m *mongoDB) ExpireFoodItems(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.FoodItemCollection).UpdateMany(ctx,
		bson.M{
			"status":     schema.FoodItemAvailable,
			"expiryDate": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{"status": schema.FoodItemExpired}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
