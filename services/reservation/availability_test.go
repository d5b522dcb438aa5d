package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(repo *fakeReservationRepo, cache *fakeCache) *DefaultAvailabilityService {
	svc := &DefaultAvailabilityService{
		Hours: &fakeHoursService{cfg: slotTestConfig()},
		Repo:  repo,
		Now:   func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) },
	}
	if cache != nil {
		svc.Cache = cache
	}
	return svc
}

func TestGetAvailabilityComputesRemainingPerSlot(t *testing.T) {
	repo := &fakeReservationRepo{sum: 48}
	svc := newAvailabilityService(repo, newFakeCache())

	day, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	assert.False(t, day.Closed)
	require.Len(t, day.Slots, 4)
	for _, slot := range day.Slots {
		assert.Equal(t, 12, slot.Remaining)
	}
	assert.Equal(t, "17:00", day.Slots[0].Time)
}

func TestGetAvailabilityClosedDayHasNoSlots(t *testing.T) {
	svc := newAvailabilityService(&fakeReservationRepo{}, newFakeCache())

	day, err := svc.GetAvailability(context.Background(), "2025-06-09", "innen")
	require.NoError(t, err)
	assert.True(t, day.Closed)
	assert.Empty(t, day.Slots)
}

func TestGetAvailabilityFailsClosedOnCountError(t *testing.T) {
	repo := &fakeReservationRepo{sumErr: errors.New("primary stepped down")}
	svc := newAvailabilityService(repo, newFakeCache())

	day, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	require.NotEmpty(t, day.Slots)
	for _, slot := range day.Slots {
		assert.Equal(t, 0, slot.Remaining, "unverifiable capacity must read as full")
	}
}

func TestGetAvailabilityFloorsOversoldSlotAtZero(t *testing.T) {
	repo := &fakeReservationRepo{sum: 70}
	svc := newAvailabilityService(repo, newFakeCache())

	day, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	for _, slot := range day.Slots {
		assert.Equal(t, 0, slot.Remaining)
	}
}

func TestGetAvailabilityServesCachedPayload(t *testing.T) {
	repo := &fakeReservationRepo{sum: 10}
	cache := newFakeCache()
	svc := newAvailabilityService(repo, cache)

	first, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// Change the store; within the TTL the cached payload wins.
	repo.sum = 60
	second, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, 1, cache.sets, "a cache hit must not rewrite the entry")

	// After invalidation the fresh count shows.
	cache.Clear(context.Background())
	third, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	assert.Equal(t, 0, third.Slots[0].Remaining)
}

func TestGetAvailabilityCacheKeyedByDateAndArea(t *testing.T) {
	cache := newFakeCache()
	svc := newAvailabilityService(&fakeReservationRepo{}, cache)

	_, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	_, err = svc.GetAvailability(context.Background(), "2025-06-11", "innen")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}

func TestGetOpeningHoursCached(t *testing.T) {
	cache := newFakeCache()
	svc := newAvailabilityService(&fakeReservationRepo{}, cache)

	cfg, err := svc.GetOpeningHours(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.ReservationsEnabled)
	assert.Equal(t, 1, cache.sets)

	again, err := svc.GetOpeningHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Slot, again.Slot)
	assert.Equal(t, 1, cache.sets)
}

func TestGetAvailabilityWorksWithoutCache(t *testing.T) {
	svc := newAvailabilityService(&fakeReservationRepo{sum: 0}, nil)

	day, err := svc.GetAvailability(context.Background(), "2025-06-10", "innen")
	require.NoError(t, err)
	assert.Equal(t, 60, day.Slots[0].Remaining)
}
