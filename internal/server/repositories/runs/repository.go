package runs

import (
	"context"

	"github.com/dmitrijs2005/runaudit/internal/server/models"
)

// ListLimit caps the number of runs returned by ListForUser.
const ListLimit = 100

type Repository interface {
	Create(ctx context.Context, run *models.Run) (*models.Run, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Run, error)
	StatsForUser(ctx context.Context, userID string) (*models.RunStats, error)
	GetForUser(ctx context.Context, userID, runID string) (*models.Run, error)
}
