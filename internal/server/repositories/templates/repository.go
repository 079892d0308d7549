package templates

import (
	"context"

	"github.com/dmitrijs2005/runaudit/internal/server/models"
)

// ListLimit caps the number of templates returned by List.
const ListLimit = 1000

// UpsertResult tells what Upsert did with a template.
type UpsertResult int

const (
	Created UpsertResult = iota
	Updated
	Unchanged
)

func (r UpsertResult) String() string {
	switch r {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

type Repository interface {
	List(ctx context.Context) ([]*models.Template, error)
	GetByID(ctx context.Context, id string) (*models.Template, error)
	Upsert(ctx context.Context, t *models.Template) (UpsertResult, error)
}
