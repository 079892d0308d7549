package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/runaudit/internal/client/client"
	"github.com/dmitrijs2005/runaudit/internal/client/models"
	"github.com/dmitrijs2005/runaudit/internal/netx"
)

// downloadFile is a test seam for netx.DownloadPresignedURL.
var downloadFile = netx.DownloadPresignedURL

// RunService browses templates and submits or inspects audit runs on behalf
// of the logged-in user.
type RunService interface {
	Templates(ctx context.Context) ([]*models.Template, error)
	Template(ctx context.Context, id string) (*models.Template, error)
	Upload(ctx context.Context, templateID, path string) (*models.Run, error)
	Runs(ctx context.Context) ([]*models.Run, error)
	Run(ctx context.Context, id string) (*models.Run, error)
	Stats(ctx context.Context) (*models.RunStats, error)
	DownloadURL(ctx context.Context, id string) (string, error)
	Download(ctx context.Context, id, destDir string) (string, error)
}

type runService struct {
	client client.Client
	auth   *authService
}

// NewRunService constructs a RunService. Tokens come from the session cache
// stored in db.
func NewRunService(c client.Client, db *sql.DB) RunService {
	return &runService{client: c, auth: &authService{client: c, db: db}}
}

func (s *runService) Templates(ctx context.Context) ([]*models.Template, error) {
	return s.client.Templates(ctx)
}

func (s *runService) Template(ctx context.Context, id string) (*models.Template, error) {
	return s.client.Template(ctx, id)
}

// Upload reads the CSV at path and submits it as a run against templateID.
func (s *runService) Upload(ctx context.Context, templateID, path string) (*models.Run, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var run *models.Run
	err = withToken(ctx, s.auth, func(token string) error {
		var err error
		run, err = s.client.UploadRun(ctx, token, templateID, filepath.Base(path), content)
		return err
	})
	return run, err
}

func (s *runService) Runs(ctx context.Context) ([]*models.Run, error) {
	var runs []*models.Run
	err := withToken(ctx, s.auth, func(token string) error {
		var err error
		runs, err = s.client.Runs(ctx, token)
		return err
	})
	return runs, err
}

func (s *runService) Run(ctx context.Context, id string) (*models.Run, error) {
	var run *models.Run
	err := withToken(ctx, s.auth, func(token string) error {
		var err error
		run, err = s.client.Run(ctx, token, id)
		return err
	})
	return run, err
}

func (s *runService) Stats(ctx context.Context) (*models.RunStats, error) {
	var st *models.RunStats
	err := withToken(ctx, s.auth, func(token string) error {
		var err error
		st, err = s.client.Stats(ctx, token)
		return err
	})
	return st, err
}

func (s *runService) DownloadURL(ctx context.Context, id string) (string, error) {
	var url string
	err := withToken(ctx, s.auth, func(token string) error {
		var err error
		url, err = s.client.DownloadURL(ctx, token, id)
		return err
	})
	return url, err
}

// Download saves the archived CSV of run id into destDir and returns the
// written path. The file is named after the original upload.
func (s *runService) Download(ctx context.Context, id, destDir string) (string, error) {
	run, err := s.Run(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.DownloadURL(ctx, id)
	if err != nil {
		return "", err
	}

	name := filepath.Base(run.FileName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = run.ID + ".csv"
	}
	path := filepath.Join(destDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := downloadFile(ctx, url, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
