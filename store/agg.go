package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shreya029/foodshare/schema"
)

const countField = "n"

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}

func aggStageMatch(query bson.M) bson.M {
	return bson.M{"$match": query}
}

// aggStageGroupCount counts documents per distinct value of field.
/*
{
	"$group": {
		_id: "$field",
		count: { $sum: 1 }
	}
}
*/
func aggStageGroupCount(field string) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":   specifyField(field),
			"count": bson.M{"$sum": 1},
		},
	}
}

func aggStageSortByID() bson.M {
	return bson.M{"$sort": bson.M{"_id": 1}}
}

// aggStageLookupOne embeds the document of `from` whose _id equals
// localField as a single object under `as`.
func aggStageLookupOne(from, localField, as string) []bson.M {
	return []bson.M{
		{
			"$lookup": bson.M{
				"from":         from,
				"localField":   localField,
				"foreignField": "_id",
				"as":           as,
			},
		},
		{
			"$unwind": bson.M{
				"path":                       specifyField(as),
				"preserveNullAndEmptyArrays": true,
			},
		},
	}
}

// facetCount is a sub pipeline that yields [{n: count}] or an empty array
func facetCount(query bson.M) bson.A {
	return bson.A{
		aggStageMatch(query),
		bson.M{"$count": countField},
	}
}

// foodStatsPipeline computes the whole food statistics snapshot in one
// round trip. now is fixed by the caller so every bucket sees the same instant.
func foodStatsPipeline(now time.Time) []bson.M {
	soon := now.Add(schema.ExpiringSoonWindow)

	return []bson.M{
		{
			"$facet": bson.M{
				"totalItems": facetCount(bson.M{}),
				"availableItems": facetCount(bson.M{
					"status":     schema.FoodItemAvailable,
					"expiryDate": bson.M{"$gte": now},
				}),
				"expiringSoon": facetCount(bson.M{
					"status":     schema.FoodItemAvailable,
					"expiryDate": bson.M{"$gte": now, "$lte": soon},
				}),
				"collectedItems": facetCount(bson.M{"status": schema.FoodItemCollected}),
				"expiredItems":   facetCount(bson.M{"status": schema.FoodItemExpired}),
				"byStatus":       bson.A{aggStageGroupCount("status"), aggStageSortByID()},
				"byCategory":     bson.A{aggStageGroupCount("category"), aggStageSortByID()},
			},
		},
	}
}

type facetCounter struct {
	N int64 `bson:"n"`
}

type foodStatsFacet struct {
	TotalItems     []facetCounter      `bson:"totalItems"`
	AvailableItems []facetCounter      `bson:"availableItems"`
	ExpiringSoon   []facetCounter      `bson:"expiringSoon"`
	CollectedItems []facetCounter      `bson:"collectedItems"`
	ExpiredItems   []facetCounter      `bson:"expiredItems"`
	ByStatus       []schema.GroupCount `bson:"byStatus"`
	ByCategory     []schema.GroupCount `bson:"byCategory"`
}

func firstCount(c []facetCounter) int64 {
	if len(c) == 0 {
		return 0
	}
	return c[0].N
}

func (f foodStatsFacet) stats() schema.FoodStats {
	stats := schema.FoodStats{
		TotalItems:     firstCount(f.TotalItems),
		AvailableItems: firstCount(f.AvailableItems),
		ExpiringSoon:   firstCount(f.ExpiringSoon),
		CollectedItems: firstCount(f.CollectedItems),
		ExpiredItems:   firstCount(f.ExpiredItems),
		ByStatus:       f.ByStatus,
		ByCategory:     f.ByCategory,
	}
	if stats.ByStatus == nil {
		stats.ByStatus = []schema.GroupCount{}
	}
	if stats.ByCategory == nil {
		stats.ByCategory = []schema.GroupCount{}
	}
	return stats
}

// requestDetailPipeline selects requests and embeds the linked donation
func requestDetailPipeline(query bson.M) []bson.M {
	pipeline := []bson.M{
		aggStageMatch(query),
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
	}
	return append(pipeline, aggStageLookupOne(schema.DonationCollection, "donation", "donationDetail")...)
}

// orphanedReservationPipeline finds donations holding a recipient although
// no request references them any more
func orphanedReservationPipeline(before time.Time) []bson.M {
	pipeline := []bson.M{
		aggStageMatch(bson.M{
			"status":    bson.M{"$in": bson.A{schema.DonationReserved, schema.DonationDistributed}},
			"updatedAt": bson.M{"$lt": before},
		}),
		{
			"$lookup": bson.M{
				"from":         schema.RequestCollection,
				"localField":   "_id",
				"foreignField": "donation",
				"as":           "requests",
			},
		},
		aggStageMatch(bson.M{"requests": bson.M{"$size": 0}}),
		{"$project": bson.M{"_id": 1}},
	}
	return pipeline
}
