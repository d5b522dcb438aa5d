package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"gasthaus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *models.ReservationInput {
	return &models.ReservationInput{
		FirstName: "Anna",
		LastName:  "Muster",
		Email:     "anna@example.com",
		Phone:     "+49 170 1234567",
		Date:      "2025-06-11", // a Wednesday, open 17:00-19:00
		Time:      "17:30",
		People:    4,
		Area:      "innen",
	}
}

func newCreateService(t *testing.T, repo *fakeReservationRepo, cfg *models.OpeningHoursConfig) *DefaultReservationService {
	t.Helper()
	return &DefaultReservationService{
		Hours:     &fakeHoursService{cfg: cfg},
		Repo:      repo,
		Vault:     testVault(t),
		Limiter:   &fakeLimiter{allow: true},
		RateLimit: 3,
		RateWin:   time.Minute,
		Now:       func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreatePersistsEncryptedPendingReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newCreateService(t, repo, slotTestConfig())

	id, err := svc.Create(context.Background(), validInput(), "user-17")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.inserted, 1)
	rec := repo.inserted[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, models.StatusPending, rec.Status)
	assert.Equal(t, "2025-06-11", rec.Date)
	assert.Equal(t, "17:30", rec.Time)
	assert.Equal(t, "innen", rec.Area)
	assert.Equal(t, 4, rec.People)
	assert.Equal(t, "2025-06-11", rec.DateIndex)
	assert.Equal(t, svc.Vault.HashValue("anna@example.com"), rec.EmailHash)
	assert.Equal(t, svc.Vault.HashValue("user-17"), rec.UserHash)

	// The blob must round-trip to the submitted PII.
	var contact models.ReservationPII
	require.NoError(t, svc.Vault.Decrypt(rec.Enc, &contact))
	assert.Equal(t, "Anna", contact.FirstName)
	assert.Equal(t, "anna@example.com", contact.Email)
	assert.Equal(t, "user-17", contact.UserID)
	assert.Equal(t, models.StatusPending, contact.Status)
}

func TestCreateRejectsStructurallyInvalidInput(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newCreateService(t, repo, slotTestConfig())

	in := validInput()
	in.Email = "not-an-email"
	in.People = 0

	_, err := svc.Create(context.Background(), in, "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "invalidInput", validationErr.Code)
	assert.Len(t, validationErr.Issues, 2)
	assert.Empty(t, repo.inserted)
}

func TestCreateRateLimited(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newCreateService(t, repo, slotTestConfig())
	limiter := &fakeLimiter{allow: false}
	svc.Limiter = limiter

	_, err := svc.Create(context.Background(), validInput(), "203.0.113.9")
	var rateErr *RateLimitedError
	require.ErrorAs(t, err, &rateErr)
	assert.Empty(t, repo.inserted)
	// The limiter key is scoped to the action and identity.
	require.Len(t, limiter.keys, 1)
	assert.Equal(t, "reservation:create:203.0.113.9", limiter.keys[0])
}

func TestCreateRejectsWhenReservationsDisabled(t *testing.T) {
	cfg := slotTestConfig()
	cfg.ReservationsEnabled = false
	svc := newCreateService(t, &fakeReservationRepo{}, cfg)

	_, err := svc.Create(context.Background(), validInput(), "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "reservationsDisabled", validationErr.Code)
}

func TestCreateRejectsDisabledArea(t *testing.T) {
	svc := newCreateService(t, &fakeReservationRepo{}, slotTestConfig())

	in := validInput()
	in.Area = "terrasse" // disabled in the fixture

	_, err := svc.Create(context.Background(), in, "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "areaDisabled", validationErr.Code)
}

func TestCreateRejectsTimeOutsideSlotSet(t *testing.T) {
	svc := newCreateService(t, &fakeReservationRepo{}, slotTestConfig())

	in := validInput()
	in.Time = "16:45" // before opening

	_, err := svc.Create(context.Background(), in, "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "timeNotAvailable", validationErr.Code)
}

func TestCreateRejectsClosedDay(t *testing.T) {
	svc := newCreateService(t, &fakeReservationRepo{}, slotTestConfig())

	in := validInput()
	in.Date = "2025-06-16" // a Monday, closed

	_, err := svc.Create(context.Background(), in, "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "timeNotAvailable", validationErr.Code)
}

func TestCreateRejectsDateOutsideBookingWindow(t *testing.T) {
	svc := newCreateService(t, &fakeReservationRepo{}, slotTestConfig())

	in := validInput()
	in.Date = "2025-06-04" // past Wednesday

	_, err := svc.Create(context.Background(), in, "user-17")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "dateOutOfRange", validationErr.Code)

	in = validInput()
	in.Date = "2025-09-10" // beyond the 60-day advance window
	_, err = svc.Create(context.Background(), in, "user-17")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "dateOutOfRange", validationErr.Code)
}

func TestCreateRejectsFullSlot(t *testing.T) {
	// Christmas Eve: capacity 60, three accepted parties of 20 already hold
	// the 19:00 slot.
	cfg := slotTestConfig()
	cfg.Exceptions["2025-12-24"] = models.DaySchedule{
		Intervals: []models.TimeInterval{{Start: "17:00", End: "21:00"}},
	}
	repo := &fakeReservationRepo{sum: 60}
	svc := newCreateService(t, repo, cfg)
	svc.Now = func() time.Time { return time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC) }

	in := validInput()
	in.Date = "2025-12-24"
	in.Time = "19:00"
	in.People = 1

	_, err := svc.Create(context.Background(), in, "user-17")
	var capacityErr *CapacityExceededError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 0, capacityErr.Remaining)
	assert.Contains(t, err.Error(), "0 remaining")
	assert.Empty(t, repo.inserted)
}

func TestCreateReportsPartialRemaining(t *testing.T) {
	repo := &fakeReservationRepo{sum: 58}
	svc := newCreateService(t, repo, slotTestConfig())

	in := validInput()
	in.People = 5

	_, err := svc.Create(context.Background(), in, "user-17")
	var capacityErr *CapacityExceededError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 2, capacityErr.Remaining)
}

func TestCreatePropagatesCapacityCountFailure(t *testing.T) {
	repo := &fakeReservationRepo{sumErr: errors.New("connection reset")}
	svc := newCreateService(t, repo, slotTestConfig())

	_, err := svc.Create(context.Background(), validInput(), "user-17")
	require.Error(t, err)
	var capacityErr *CapacityExceededError
	assert.False(t, errors.As(err, &capacityErr), "a store failure must not masquerade as a full slot")
	assert.Empty(t, repo.inserted)
}

func TestCreateHardFailsWithoutConfig(t *testing.T) {
	svc := newCreateService(t, &fakeReservationRepo{}, slotTestConfig())
	svc.Hours = &fakeHoursService{strictErr: errors.New("store down")}

	_, err := svc.Create(context.Background(), validInput(), "user-17")
	require.Error(t, err)
}
