package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"gasthaus/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SumPeople aggregates the party sizes of all reservations occupying the
// given (date, area, time) tuple. Only pending and accepted reservations
// hold seats.
func (r *mongoReservationRepo) SumPeople(ctx context.Context, date, area, timeStr string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"date":   date,
			"area":   area,
			"time":   timeStr,
			"status": bson.M{"$in": []string{models.StatusPending, models.StatusAccepted}},
		}},
		{"$group": bson.M{
			"_id":    nil,
			"people": bson.M{"$sum": "$people"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate reserved people: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		People int `bson:"people"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode reserved people aggregate: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].People, nil
}

func (r *mongoReservationRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"dateIndex": bson.M{"$gte": from, "$lte": to}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations by date range: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

func (r *mongoReservationRepo) FindByEmailHash(ctx context.Context, emailHash string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"emailHash": emailHash})
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations by email hash: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// CompletePastAccepted marks accepted reservations dated strictly before
// beforeDate as completed. Used by the periodic completion sweep.
func (r *mongoReservationRepo) CompletePastAccepted(ctx context.Context, beforeDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.StatusAccepted,
		"date":   bson.M{"$lt": beforeDate},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.StatusCompleted,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past reservations: %w", err)
	}
	return res.ModifiedCount, nil
}
