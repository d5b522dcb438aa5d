package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on reservation ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the capacity aggregation
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "area", Value: 1}, {Key: "time", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("date_area_time_status_idx"),
		},
		// Plaintext date index for admin range queries
		{
			Keys:    bson.D{{Key: "dateIndex", Value: 1}},
			Options: options.Index().SetName("date_index_idx"),
		},
		// Keyed-hash equality lookups
		{
			Keys:    bson.D{{Key: "emailHash", Value: 1}},
			Options: options.Index().SetName("email_hash_idx"),
		},
		{
			Keys:    bson.D{{Key: "userHash", Value: 1}},
			Options: options.Index().SetName("user_hash_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
