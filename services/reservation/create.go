package reservation

import (
	"context"
	"fmt"
	"time"

	reservationRepo "gasthaus/database/repository/reservation"
	"gasthaus/models"
	"gasthaus/services/hours"
	"gasthaus/services/pii"
	"gasthaus/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RateLimiter is the pure decision function guarding reservation creation.
type RateLimiter interface {
	Allow(key string, limit int, window time.Duration, now time.Time) bool
}

// DefaultReservationService validates and writes reservations, and carries
// the admin-side operations on persisted records.
type DefaultReservationService struct {
	Hours     hours.Service
	Repo      reservationRepo.Repository
	Vault     *pii.Vault
	Limiter   RateLimiter
	RateLimit int
	RateWin   time.Duration
	Now       func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create runs the fail-fast validation sequence and persists the reservation
// as pending. Steps 5 and 6 re-derive schedule and capacity from live data;
// a cached slot list never reaches the commit path.
func (s *DefaultReservationService) Create(ctx context.Context, in *models.ReservationInput, identity string) (string, error) {
	logger := utils.GetLogger()
	now := s.now()

	// 1. Structural validation of every field.
	if issues := ValidateInput(in); len(issues) > 0 {
		return "", &ValidationError{Code: "invalidInput", Message: "reservation request failed validation", Issues: issues}
	}

	// 2. Rate limit on the requester identity.
	if s.Limiter != nil && !s.Limiter.Allow("reservation:create:"+identity, s.RateLimit, s.RateWin, now) {
		return "", &RateLimitedError{RetryAfter: s.RateWin}
	}

	// 3.-6. need the live configuration; a store failure here must hard-fail
	// rather than validate against defaults.
	cfg, err := s.Hours.GetConfigStrict(ctx)
	if err != nil {
		return "", err
	}

	// 3. Global kill switch.
	if !cfg.ReservationsEnabled {
		return "", &ValidationError{Code: "reservationsDisabled", Message: "reservations are currently disabled"}
	}

	// 4. Area must exist and be enabled.
	areaCfg, ok := cfg.Areas[in.Area]
	if !ok || !areaCfg.Enabled {
		return "", &ValidationError{Code: "areaDisabled", Message: "this seating area is not bookable"}
	}

	// 5. Date within the booking window, time an exact member of the live
	// slot set.
	if issue := s.checkBookingWindow(cfg, in.Date, now); issue != nil {
		return "", issue
	}
	closed, times := GenerateSlots(cfg, in.Date, in.Area, now)
	if closed || !containsTime(times, in.Time) {
		return "", &ValidationError{Code: "timeNotAvailable", Message: "requested time is not a bookable slot"}
	}

	// 6. Capacity re-aggregated at commit time. Unlike the availability
	// read, a failed count here is a store error, not zero remaining: a
	// booking must not be rejected as full when the store is down.
	reserved, err := s.Repo.SumPeople(ctx, in.Date, in.Area, in.Time)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate reserved people: %w", err)
	}
	remaining := areaCfg.Capacity - reserved
	if remaining < 0 {
		remaining = 0
	}
	if in.People > remaining {
		return "", &CapacityExceededError{Remaining: remaining}
	}

	// 7. Encrypt the PII payload, compute the search hashes, persist.
	record := models.ReservationPII{
		UserID:    identity,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Status:    models.StatusPending,
	}
	blob, err := s.Vault.Encrypt(record)
	if err != nil {
		return "", err
	}

	res := &models.Reservation{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Time:      in.Time,
		Area:      in.Area,
		People:    in.People,
		Status:    models.StatusPending,
		Enc:       blob,
		EmailHash: s.Vault.HashValue(in.Email),
		UserHash:  s.Vault.HashValue(identity),
		DateIndex: pii.DateIndex(in.Date),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.Repo.Insert(ctx, res); err != nil {
		return "", err
	}

	logger.Info("reservation created",
		zap.String("id", res.ID),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
		zap.String("area", res.Area),
		zap.Int("people", res.People))
	return res.ID, nil
}

func (s *DefaultReservationService) checkBookingWindow(cfg *models.OpeningHoursConfig, date string, now time.Time) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC)
	requested, err := time.Parse("2006-01-02", date)
	if err != nil {
		return &ValidationError{Code: "invalidInput", Message: "date is not a valid calendar date"}
	}
	if requested.Before(today) {
		return &ValidationError{Code: "dateOutOfRange", Message: "date is in the past"}
	}
	if requested.After(today.AddDate(0, 0, cfg.Slot.MaxAdvanceDays)) {
		return &ValidationError{Code: "dateOutOfRange", Message: fmt.Sprintf("date is more than %d days ahead", cfg.Slot.MaxAdvanceDays)}
	}
	return nil
}

func containsTime(times []string, t string) bool {
	for _, candidate := range times {
		if candidate == t {
			return true
		}
	}
	return false
}
