package reservation

import (
	"bytes"
	"context"
	"testing"
	"time"

	"gasthaus/models"
	"gasthaus/services/pii"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeReservationRepo struct {
	inserted  []*models.Reservation
	insertErr error
	sum       int
	sumErr    error
	records   []models.Reservation
	completed int64
}

func (f *fakeReservationRepo) Insert(ctx context.Context, res *models.Reservation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, res)
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeReservationRepo) SumPeople(ctx context.Context, date, area, timeStr string) (int, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	return f.sum, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status, rejectionReason string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Status = status
			f.records[i].RejectionReason = rejectionReason
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeReservationRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, rec := range f.records {
		if rec.DateIndex >= from && rec.DateIndex <= to {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByEmailHash(ctx context.Context, emailHash string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, rec := range f.records {
		if rec.EmailHash == emailHash {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeReservationRepo) CompletePastAccepted(ctx context.Context, beforeDate string) (int64, error) {
	return f.completed, nil
}

func (f *fakeReservationRepo) EnsureIndexes() error { return nil }

type fakeHoursService struct {
	cfg       *models.OpeningHoursConfig
	strictErr error
}

func (f *fakeHoursService) GetConfig(ctx context.Context) *models.OpeningHoursConfig {
	return f.cfg
}

func (f *fakeHoursService) GetConfigStrict(ctx context.Context) (*models.OpeningHoursConfig, error) {
	if f.strictErr != nil {
		return nil, f.strictErr
	}
	return f.cfg, nil
}

func (f *fakeHoursService) SaveConfig(ctx context.Context, cfg *models.OpeningHoursConfig) ([]models.FieldIssue, error) {
	return nil, nil
}

type fakeLimiter struct {
	allow bool
	keys  []string
}

func (f *fakeLimiter) Allow(key string, limit int, window time.Duration, now time.Time) bool {
	f.keys = append(f.keys, key)
	return f.allow
}

type fakeCache struct {
	entries map[string][]byte
	sets    int
	cleared int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, ok := f.entries[key]
	return payload, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	f.entries[key] = payload
	f.sets++
}

func (f *fakeCache) Clear(ctx context.Context) {
	f.entries = make(map[string][]byte)
	f.cleared++
}

func testVault(t *testing.T) *pii.Vault {
	t.Helper()
	vault, err := pii.NewVault(bytes.Repeat([]byte{0x41}, 32), bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return vault
}
