package client

import (
	"context"

	"github.com/dmitrijs2005/runaudit/internal/client/models"
)

// Client is the runaudit API as used by the CLI. Methods taking a token
// call authenticated endpoints.
type Client interface {
	Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context, token string) (*models.User, error)

	Templates(ctx context.Context) ([]*models.Template, error)
	Template(ctx context.Context, id string) (*models.Template, error)

	UploadRun(ctx context.Context, token, templateID, fileName string, content []byte) (*models.Run, error)
	Runs(ctx context.Context, token string) ([]*models.Run, error)
	Run(ctx context.Context, token, id string) (*models.Run, error)
	Stats(ctx context.Context, token string) (*models.RunStats, error)
	DownloadURL(ctx context.Context, token, id string) (string, error)

	Health(ctx context.Context) (*models.Health, error)
}
