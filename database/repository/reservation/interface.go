package reservationRepo

import (
	"context"

	"gasthaus/database"
	"gasthaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists reservation records and answers the capacity
// aggregation the availability engine is built on.
type Repository interface {
	Insert(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	SumPeople(ctx context.Context, date, area, timeStr string) (int, error)
	UpdateStatus(ctx context.Context, id, status, rejectionReason string) error
	ListByDateRange(ctx context.Context, from, to string) ([]models.Reservation, error)
	FindByEmailHash(ctx context.Context, emailHash string) ([]models.Reservation, error)
	DeleteByID(ctx context.Context, id string) error
	CompletePastAccepted(ctx context.Context, beforeDate string) (int64, error)
	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB reservation repository.
func NewMongoReservationRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
