package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreya029/foodshare/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("foodshare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	db := client.Database(viper.GetString("mongo.database"))

	if err := backfillVolunteerLedger(ctx, db); err != nil {
		fmt.Println("failed to backfill volunteer ledger: ", err)
		return err
	}

	return nil
}

// backfillVolunteerLedger gives volunteers registered before the reward
// ledger existed an empty ledger so $inc and $push behave on every document
func backfillVolunteerLedger(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(schema.VolunteerCollection)

	if _, err := c.UpdateMany(ctx,
		bson.M{"stars": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"stars": 0}},
	); err != nil {
		return err
	}

	_, err := c.UpdateMany(ctx,
		bson.M{"rewards": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"rewards": bson.A{}}},
	)
	return err
}
