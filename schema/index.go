package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return NewMongoDBIndexerWithClient(client, dbName)
}

// NewMongoDBIndexerWithClient builds an indexer on an already connected client
func NewMongoDBIndexerWithClient(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexDonationCollection())
	panicIfError(m.IndexFoodItemCollection())
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexVolunteerCollection())
}

func (m *MongoDBIndexer) IndexDonationCollection() error {
	if err := m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.M{
			"status": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.M{
			"donor": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexFoodItemCollection() error {
	if err := m.createIndex(FoodItemCollection, mongo.IndexModel{
		Keys: bson.M{
			"expiryDate": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(FoodItemCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "category", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	for _, field := range []string{"donation", "foodItem", "recipient"} {
		if err := m.createIndex(RequestCollection, mongo.IndexModel{
			Keys: bson.M{
				field: 1,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (m *MongoDBIndexer) IndexVolunteerCollection() error {
	return m.createIndex(VolunteerCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
