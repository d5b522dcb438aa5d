package hoursRepo

import (
	"context"

	"gasthaus/database"
	"gasthaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists the singleton opening-hours document. Get returns
// mongo.ErrNoDocuments when no configuration has been stored yet.
type Repository interface {
	Get(ctx context.Context) (*models.OpeningHoursDoc, error)
	Save(ctx context.Context, cfg *models.OpeningHoursConfig) error
}

type mongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo constructs a new MongoDB opening-hours repository.
func NewMongoHoursRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoHoursRepo{
		coll: db.Collection("opening_hours"),
	}
}
