package reservation

import (
	"context"
	"fmt"
	"time"

	"gasthaus/models"
	"gasthaus/utils"

	"go.uber.org/zap"
)

// Allowed status transitions. Rejected, completed and cancelled are
// terminal.
var allowedTransitions = map[string][]string{
	models.StatusPending:  {models.StatusAccepted, models.StatusRejected, models.StatusCancelled},
	models.StatusAccepted: {models.StatusCompleted, models.StatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, candidate := range allowedTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// UpdateStatus performs an admin status transition. Capacity is computed on
// read, so freeing seats needs no counter bookkeeping here.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, id, status, rejectionReason string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load reservation %s: %w", id, err)
	}
	if !transitionAllowed(existing.Status, status) {
		return &ValidationError{
			Code:    "invalidTransition",
			Message: fmt.Sprintf("cannot move reservation from %s to %s", existing.Status, status),
		}
	}
	if err := s.Repo.UpdateStatus(ctx, id, status, rejectionReason); err != nil {
		return err
	}
	utils.GetLogger().Info("reservation status updated",
		zap.String("id", id), zap.String("from", existing.Status), zap.String("to", status))
	return nil
}

// ListByDateRange serves the admin overview via the plaintext date index and
// decrypts each record server-side. A decryption failure aborts the listing;
// crypto errors are never masked.
func (s *DefaultReservationService) ListByDateRange(ctx context.Context, from, to string) ([]models.ReservationView, error) {
	records, err := s.Repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return s.decryptAll(records)
}

// SearchByEmail resolves the deterministic keyed hash and looks up matching
// records without ever querying plaintext email.
func (s *DefaultReservationService) SearchByEmail(ctx context.Context, email string) ([]models.ReservationView, error) {
	records, err := s.Repo.FindByEmailHash(ctx, s.Vault.HashValue(email))
	if err != nil {
		return nil, err
	}
	return s.decryptAll(records)
}

func (s *DefaultReservationService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}

// CompleteSweep marks accepted reservations with a past date as completed.
// Invoked by the periodic background task.
func (s *DefaultReservationService) CompleteSweep(ctx context.Context) (int64, error) {
	cfg := s.Hours.GetConfig(ctx)
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := s.now().In(loc).Format("2006-01-02")
	return s.Repo.CompletePastAccepted(ctx, today)
}

func (s *DefaultReservationService) decryptAll(records []models.Reservation) ([]models.ReservationView, error) {
	views := make([]models.ReservationView, 0, len(records))
	for _, rec := range records {
		var contact models.ReservationPII
		if err := s.Vault.Decrypt(rec.Enc, &contact); err != nil {
			return nil, fmt.Errorf("failed to decrypt reservation %s: %w", rec.ID, err)
		}
		views = append(views, models.ReservationView{
			ID:              rec.ID,
			Date:            rec.Date,
			Time:            rec.Time,
			Area:            rec.Area,
			People:          rec.People,
			Status:          rec.Status,
			RejectionReason: rec.RejectionReason,
			Contact:         contact,
			CreatedAt:       rec.CreatedAt,
			UpdatedAt:       rec.UpdatedAt,
		})
	}
	return views, nil
}
