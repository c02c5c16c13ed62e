package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreya029/foodshare/schema"
)

// findPage counts every document of the collection and decodes one page of
// them, newest first, into results
func (m *mongoDB) findPage(collection string, page schema.Page, results interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	page = page.Normalize()
	c := m.collection(collection)

	total, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	cursor, err := c.Find(ctx, bson.M{}, pageOptions(page))
	if err != nil {
		return 0, err
	}

	if err := cursor.All(ctx, results); err != nil {
		return 0, err
	}
	return total, nil
}

func pageOptions(page schema.Page) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor, results interface{}) error {
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}
