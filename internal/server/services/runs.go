package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/server/audit"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/repomanager"
)

const (
	DetailInvalidTemplateID = "Invalid template_id format"
	DetailNotCSV            = "File must be a CSV"
	DetailRunNotFound       = "Run not found"
)

// Upload is a file submitted for validation against a template.
type Upload struct {
	TemplateID string
	FileName   string
	Content    []byte
}

// RunService validates uploads and serves a user's run history.
type RunService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archive     Archive
}

// NewRunService constructs a RunService. A nil archive disables file
// archiving and downloads.
func NewRunService(db *sql.DB, m repomanager.RepositoryManager, archive Archive) *RunService {
	return &RunService{db: db, repomanager: m, archive: archive}
}

// Upload checks the file's header against the template and records the
// outcome as a new run owned by userID. A failed validation is still a
// successful upload; only unusable input is an error.
func (s *RunService) Upload(ctx context.Context, userID string, up Upload) (*models.Run, error) {
	templateID, ok := canonicalID(up.TemplateID)
	if !ok {
		return nil, common.WithDetail(common.ErrInvalidID, DetailInvalidTemplateID)
	}

	tmpl, err := s.repomanager.Templates(s.db).GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.WithDetail(common.ErrorNotFound, DetailTemplateNotFound)
		}
		return nil, fmt.Errorf("error getting template: %w", err)
	}

	if !audit.IsCSVName(up.FileName) {
		return nil, common.WithDetail(common.ErrNotCSV, DetailNotCSV)
	}

	header, err := audit.ReadHeader(up.Content)
	if err != nil {
		return nil, err
	}

	status, errs := audit.Validate(tmpl.Columns, header)

	run := &models.Run{
		UserID:     userID,
		TemplateID: templateID,
		Status:     status,
		Errors:     errs,
		FileName:   up.FileName,
	}

	if s.archive != nil {
		key := StorageKey(userID)
		if err := s.archive.Put(ctx, key, up.Content); err != nil {
			return nil, fmt.Errorf("error archiving upload: %w", err)
		}
		run.ObjectKey = key
	}

	created, err := s.repomanager.Runs(s.db).Create(ctx, run)
	if err != nil {
		err = fmt.Errorf("error creating run: %w", err)
		if run.ObjectKey != "" {
			// no run points at the object any more
			if derr := s.archive.Delete(ctx, run.ObjectKey); derr != nil {
				err = errors.Join(err, fmt.Errorf("error removing archived upload: %w", derr))
			}
		}
		return nil, err
	}
	return created, nil
}

// List returns the caller's newest runs first.
func (s *RunService) List(ctx context.Context, userID string) ([]*models.Run, error) {
	items, err := s.repomanager.Runs(s.db).ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing runs: %w", err)
	}
	return items, nil
}

// Stats counts the caller's runs by outcome.
func (s *RunService) Stats(ctx context.Context, userID string) (*models.RunStats, error) {
	stats, err := s.repomanager.Runs(s.db).StatsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting runs: %w", err)
	}
	return stats, nil
}

// Get returns one run owned by userID. Runs of other users are reported as
// not found.
func (s *RunService) Get(ctx context.Context, userID, runID string) (*models.Run, error) {
	runID, ok := canonicalID(runID)
	if !ok {
		return nil, common.WithDetail(common.ErrInvalidID, DetailInvalidID)
	}

	run, err := s.repomanager.Runs(s.db).GetForUser(ctx, userID, runID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.WithDetail(common.ErrorNotFound, DetailRunNotFound)
		}
		return nil, fmt.Errorf("error getting run: %w", err)
	}
	return run, nil
}

// DownloadURL returns a temporary link to the archived upload of a run.
func (s *RunService) DownloadURL(ctx context.Context, userID, runID string) (string, error) {
	run, err := s.Get(ctx, userID, runID)
	if err != nil {
		return "", err
	}

	if s.archive == nil || run.ObjectKey == "" {
		return "", common.WithDetail(common.ErrNoArchivedFile, "Run has no archived file")
	}

	url, err := s.archive.PresignGet(ctx, run.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}
	return url, nil
}
