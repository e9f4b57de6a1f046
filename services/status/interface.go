package status

import (
	"context"

	"github.com/teusdrz/firemoto/models"
)

// StatusService records and lists health-probe status checks.
type StatusService interface {
	CreateStatusCheck(ctx context.Context, in models.StatusCheckInput) (*models.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)
}
