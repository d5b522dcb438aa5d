package reservation

import (
	"context"

	"gasthaus/models"
)

// AvailabilityService answers the two read operations exposed to the UI.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, date, area string) (*models.DayAvailability, error)
	GetOpeningHours(ctx context.Context) (*models.OpeningHoursConfig, error)
}

// Service covers reservation creation and the admin operations on persisted
// records.
type Service interface {
	Create(ctx context.Context, in *models.ReservationInput, identity string) (string, error)
	UpdateStatus(ctx context.Context, id, status, rejectionReason string) error
	ListByDateRange(ctx context.Context, from, to string) ([]models.ReservationView, error)
	SearchByEmail(ctx context.Context, email string) ([]models.ReservationView, error)
	Delete(ctx context.Context, id string) error
	CompleteSweep(ctx context.Context) (int64, error)
}
