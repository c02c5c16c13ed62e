package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shreya029/foodshare/schema"
)

func TestFoodStatsPipelineUsesOneInstant(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	pipeline := foodStatsPipeline(now)

	assert.Len(t, pipeline, 1)
	facet := pipeline[0]["$facet"].(bson.M)

	available := facet["availableItems"].(bson.A)[0].(bson.M)["$match"].(bson.M)
	assert.Equal(t, schema.FoodItemAvailable, available["status"])
	assert.Equal(t, bson.M{"$gte": now}, available["expiryDate"])

	soon := facet["expiringSoon"].(bson.A)[0].(bson.M)["$match"].(bson.M)
	assert.Equal(t, bson.M{"$gte": now, "$lte": now.Add(7 * 24 * time.Hour)}, soon["expiryDate"])

	for _, name := range []string{"totalItems", "availableItems", "expiringSoon", "collectedItems", "expiredItems", "byStatus", "byCategory"} {
		assert.Contains(t, facet, name)
	}
}

func TestFoodStatsFacetDefaults(t *testing.T) {
	stats := foodStatsFacet{}.stats()
	assert.Equal(t, int64(0), stats.TotalItems)
	assert.NotNil(t, stats.ByStatus)
	assert.NotNil(t, stats.ByCategory)

	stats = foodStatsFacet{
		TotalItems:   []facetCounter{{N: 4}},
		ExpiringSoon: []facetCounter{{N: 1}},
		ByStatus:     []schema.GroupCount{{ID: "available", Count: 4}},
	}.stats()
	assert.Equal(t, int64(4), stats.TotalItems)
	assert.Equal(t, int64(1), stats.ExpiringSoon)
	assert.Equal(t, int64(0), stats.CollectedItems)
	assert.Len(t, stats.ByStatus, 1)
}

func TestRequestDetailPipelineEmbedsDonation(t *testing.T) {
	pipeline := requestDetailPipeline(bson.M{"recipient": "bob"})
	assert.Len(t, pipeline, 4)

	assert.Equal(t, bson.M{"$match": bson.M{"recipient": "bob"}}, pipeline[0])

	lookup := pipeline[2]["$lookup"].(bson.M)
	assert.Equal(t, schema.DonationCollection, lookup["from"])
	assert.Equal(t, "donation", lookup["localField"])
	assert.Equal(t, "donationDetail", lookup["as"])

	unwind := pipeline[3]["$unwind"].(bson.M)
	assert.Equal(t, "$donationDetail", unwind["path"])
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestOrphanedReservationPipeline(t *testing.T) {
	before := time.Date(2024, 3, 10, 8, 59, 0, 0, time.UTC)
	pipeline := orphanedReservationPipeline(before)
	assert.Len(t, pipeline, 4)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, bson.M{"$lt": before}, match["updatedAt"])

	lookup := pipeline[1]["$lookup"].(bson.M)
	assert.Equal(t, schema.RequestCollection, lookup["from"])
	assert.Equal(t, "donation", lookup["foreignField"])

	assert.Equal(t, bson.M{"$match": bson.M{"requests": bson.M{"$size": 0}}}, pipeline[2])
}

func TestFoodItemQuery(t *testing.T) {
	query, err := foodItemQuery(schema.FoodItemFilter{})
	assert.NoError(t, err)
	assert.Empty(t, query)

	query, err = foodItemQuery(schema.FoodItemFilter{Status: schema.FoodItemCollected, Category: schema.CategoryMeat})
	assert.NoError(t, err)
	assert.Equal(t, bson.M{"status": schema.FoodItemCollected, "category": schema.CategoryMeat}, query)

	_, err = foodItemQuery(schema.FoodItemFilter{Category: "Candy"})
	assert.Error(t, err)
}

func TestSpecifyField(t *testing.T) {
	assert.Equal(t, "$status", specifyField("status"))
}
