package hoursRepo

import (
	"context"
	"fmt"
	"time"

	"gasthaus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The configuration is a singleton document under a fixed id.
const configDocID = "opening-hours"

func (r *mongoHoursRepo) Get(ctx context.Context) (*models.OpeningHoursDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.OpeningHoursDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": configDocID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoHoursRepo) Save(ctx context.Context, cfg *models.OpeningHoursConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": configDocID}, cfg, opts); err != nil {
		return fmt.Errorf("failed to save opening hours config: %w", err)
	}
	return nil
}
