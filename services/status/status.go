package status

import (
	"context"
	"fmt"
	"time"

	statusRepo "github.com/teusdrz/firemoto/database/repository/status"
	"github.com/teusdrz/firemoto/models"

	"github.com/google/uuid"
)

const storageTimeout = 10 * time.Second

// DefaultStatusService is the production implementation.
type DefaultStatusService struct {
	Repo statusRepo.StatusCheckRepository
}

// CreateStatusCheck builds a status check from validated input and
// persists it. The id and timestamp are generated here, never taken
// from the caller.
func (s *DefaultStatusService) CreateStatusCheck(ctx context.Context, in models.StatusCheckInput) (*models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: in.ClientName,
		Timestamp:  models.Now(),
	}
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.Repo.Insert(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to store status check: %w", err)
	}
	return &check, nil
}

// ListStatusChecks returns the stored status checks.
func (s *DefaultStatusService) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.Repo.ListAll(ctx)
}
