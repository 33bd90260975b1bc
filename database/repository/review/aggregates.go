package reviewRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AggregateForWorker runs a $match + $group pipeline over the worker's
// reviews. The pipeline executes as one statement, so the returned pair is a
// consistent snapshot of the full review set at some point in time.
func (r *MongoReviewRepo) AggregateForWorker(workerID string) (RatingAggregate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"workerId": workerID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$workerId",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return RatingAggregate{}, fmt.Errorf("rating aggregation failed for worker %s: %w", workerID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return RatingAggregate{}, fmt.Errorf("failed to decode rating aggregate: %w", err)
	}
	if len(results) == 0 {
		return RatingAggregate{}, nil
	}
	return RatingAggregate{Average: results[0].Average, Count: results[0].Count}, nil
}
