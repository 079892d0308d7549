package users

import (
	"context"

	"github.com/dmitrijs2005/runaudit/internal/server/models"
)

// Repository stores accounts. Create reports common.ErrDuplicateEmail when the
// email is taken; GetByEmail reports common.ErrorNotFound for unknown emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
