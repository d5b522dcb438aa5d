package hours

import (
	"context"
	"errors"
	"testing"

	"gasthaus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeHoursRepo struct {
	doc     *models.OpeningHoursDoc
	getErr  error
	saved   *models.OpeningHoursConfig
	saveErr error
}

func (f *fakeHoursRepo) Get(ctx context.Context) (*models.OpeningHoursDoc, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.doc == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.doc, nil
}

func (f *fakeHoursRepo) Save(ctx context.Context, cfg *models.OpeningHoursConfig) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = cfg
	return nil
}

type fakeInvalidator struct {
	cleared int
}

func (f *fakeInvalidator) Clear(ctx context.Context) { f.cleared++ }

func TestGetConfigFailsClosedToDefaults(t *testing.T) {
	svc := &DefaultHoursService{Repo: &fakeHoursRepo{getErr: errors.New("connection refused")}}

	cfg := svc.GetConfig(context.Background())
	assert.Equal(t, Defaults(), cfg)
}

func TestGetConfigWritesBackDefaultsWhenAbsent(t *testing.T) {
	repo := &fakeHoursRepo{}
	svc := &DefaultHoursService{Repo: repo}

	cfg := svc.GetConfig(context.Background())
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, Defaults(), repo.saved)
}

func TestGetConfigNormalizesStoredDocument(t *testing.T) {
	closed := true
	repo := &fakeHoursRepo{doc: &models.OpeningHoursDoc{
		Week: map[string]models.RawDaySchedule{"sonntag": {IsClosed: &closed}},
	}}
	svc := &DefaultHoursService{Repo: repo}

	cfg := svc.GetConfig(context.Background())
	assert.True(t, cfg.Week["sunday"].Closed)
}

func TestGetConfigStrictPropagatesStoreFailure(t *testing.T) {
	svc := &DefaultHoursService{Repo: &fakeHoursRepo{getErr: errors.New("connection refused")}}

	_, err := svc.GetConfigStrict(context.Background())
	require.Error(t, err)
	var unavailable *ConfigUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestGetConfigStrictTreatsMissingDocAsDefaults(t *testing.T) {
	svc := &DefaultHoursService{Repo: &fakeHoursRepo{}}

	cfg, err := svc.GetConfigStrict(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestSaveConfigValidatesBeforePersisting(t *testing.T) {
	repo := &fakeHoursRepo{}
	cache := &fakeInvalidator{}
	svc := &DefaultHoursService{Repo: repo, Cache: cache}

	bad := Defaults()
	bad.Slot.StepMinutes = 0
	issues, err := svc.SaveConfig(context.Background(), bad)
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
	assert.Nil(t, repo.saved)
	assert.Zero(t, cache.cleared)
}

func TestSaveConfigPersistsAndInvalidatesCache(t *testing.T) {
	repo := &fakeHoursRepo{}
	cache := &fakeInvalidator{}
	svc := &DefaultHoursService{Repo: repo, Cache: cache}

	issues, err := svc.SaveConfig(context.Background(), Defaults())
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.NotNil(t, repo.saved)
	assert.Equal(t, 1, cache.cleared)
}
