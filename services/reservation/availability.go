package reservation

import (
	"context"
	"encoding/json"
	"time"

	reservationRepo "gasthaus/database/repository/reservation"
	"gasthaus/models"
	"gasthaus/services/hours"
	"gasthaus/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService answers the availability query: normalized
// hours -> slot generation -> capacity aggregation, memoized per (date, area).
type DefaultAvailabilityService struct {
	Hours hours.Service
	Repo  reservationRepo.Repository
	Cache AvailabilityCache
	Now   func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, date, area string) (*models.DayAvailability, error) {
	cacheKey := "slots:" + date + ":" + area
	if s.Cache != nil {
		if payload, ok := s.Cache.Get(ctx, cacheKey); ok {
			var cached models.DayAvailability
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	cfg := s.Hours.GetConfig(ctx)
	closed, times := GenerateSlots(cfg, date, area, s.now())

	result := &models.DayAvailability{
		Date:   date,
		Area:   area,
		Closed: closed,
		Slots:  make([]models.Slot, 0, len(times)),
	}
	for _, t := range times {
		result.Slots = append(result.Slots, models.Slot{
			Time:      t,
			Remaining: s.remaining(ctx, cfg, date, area, t),
		})
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			s.Cache.Set(ctx, cacheKey, payload, availabilityTTL)
		}
	}
	return result, nil
}

// GetOpeningHours serves the normalized configuration for the public
// opening-hours endpoint, cached slightly longer than availability since it
// carries no capacity data.
func (s *DefaultAvailabilityService) GetOpeningHours(ctx context.Context) (*models.OpeningHoursConfig, error) {
	const cacheKey = "hours"
	if s.Cache != nil {
		if payload, ok := s.Cache.Get(ctx, cacheKey); ok {
			var cached models.OpeningHoursConfig
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	cfg := s.Hours.GetConfig(ctx)

	if s.Cache != nil {
		if payload, err := json.Marshal(cfg); err == nil {
			s.Cache.Set(ctx, cacheKey, payload, openingHoursTTL)
		}
	}
	return cfg, nil
}

// remaining computes capacity(area) - reserved people, floored at zero. A
// failed count returns zero remaining: the availability read fails closed
// rather than advertising seats it cannot verify.
func (s *DefaultAvailabilityService) remaining(ctx context.Context, cfg *models.OpeningHoursConfig, date, area, timeStr string) int {
	reserved, err := s.Repo.SumPeople(ctx, date, area, timeStr)
	if err != nil {
		utils.GetLogger().Error("capacity count failed, reporting slot as full",
			zap.String("date", date), zap.String("area", area), zap.String("time", timeStr), zap.Error(err))
		return 0
	}
	remaining := cfg.Areas[area].Capacity - reserved
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
