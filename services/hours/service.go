package hours

import (
	"context"
	"errors"
	"fmt"

	hoursRepo "gasthaus/database/repository/hours"
	"gasthaus/models"
	"gasthaus/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CacheInvalidator is implemented by the availability cache; every admin
// write to the configuration must clear it. Stale hours are a correctness
// bug, not a staleness inconvenience.
type CacheInvalidator interface {
	Clear(ctx context.Context)
}

// Service exposes the normalized opening-hours configuration.
//
// GetConfig is the read-path accessor: it falls back to the compiled-in
// defaults when storage is unreachable. GetConfigStrict is the
// write/validate-path accessor: it hard-fails instead, because validating a
// booking against wrong defaults could admit it during actual closed hours.
type Service interface {
	GetConfig(ctx context.Context) *models.OpeningHoursConfig
	GetConfigStrict(ctx context.Context) (*models.OpeningHoursConfig, error)
	SaveConfig(ctx context.Context, cfg *models.OpeningHoursConfig) ([]models.FieldIssue, error)
}

// DefaultHoursService is the production implementation.
type DefaultHoursService struct {
	Repo  hoursRepo.Repository
	Cache CacheInvalidator
}

func (s *DefaultHoursService) GetConfig(ctx context.Context) *models.OpeningHoursConfig {
	logger := utils.GetLogger()

	doc, err := s.Repo.Get(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// First run: persist the defaults so admins edit a real document.
		cfg := Defaults()
		if saveErr := s.Repo.Save(ctx, cfg); saveErr != nil {
			logger.Warn("failed to write back default opening hours", zap.Error(saveErr))
		}
		return cfg
	}
	if err != nil {
		logger.Warn("opening hours unreachable, serving compiled-in defaults", zap.Error(err))
		return Defaults()
	}
	return Normalize(doc)
}

func (s *DefaultHoursService) GetConfigStrict(ctx context.Context) (*models.OpeningHoursConfig, error) {
	doc, err := s.Repo.Get(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, &ConfigUnavailableError{Err: fmt.Errorf("failed to fetch opening hours: %w", err)}
	}
	return Normalize(doc), nil
}

func (s *DefaultHoursService) SaveConfig(ctx context.Context, cfg *models.OpeningHoursConfig) ([]models.FieldIssue, error) {
	if issues := ValidateConfig(cfg); len(issues) > 0 {
		return issues, nil
	}
	if err := s.Repo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to persist opening hours: %w", err)
	}
	if s.Cache != nil {
		s.Cache.Clear(ctx)
	}
	return nil, nil
}
