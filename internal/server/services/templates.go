package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/templates"
	"github.com/google/uuid"
)

const (
	DetailInvalidID        = "Invalid ID format"
	DetailTemplateNotFound = "Template not found"
)

// TemplateService exposes the read-only template catalog and the seeding
// entry point.
type TemplateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTemplateService(db *sql.DB, m repomanager.RepositoryManager) *TemplateService {
	return &TemplateService{db: db, repomanager: m}
}

// List returns every template ordered by name.
func (s *TemplateService) List(ctx context.Context) ([]*models.Template, error) {
	items, err := s.repomanager.Templates(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}
	return items, nil
}

// Get returns one template. Malformed ids fail with ErrInvalidID before the
// store is consulted.
func (s *TemplateService) Get(ctx context.Context, id string) (*models.Template, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, common.WithDetail(common.ErrInvalidID, DetailInvalidID)
	}

	t, err := s.repomanager.Templates(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.WithDetail(common.ErrorNotFound, DetailTemplateNotFound)
		}
		return nil, fmt.Errorf("error getting template: %w", err)
	}
	return t, nil
}

// canonicalID parses id as a UUID in any form uuid.Parse accepts (braces,
// urn:uuid:, undashed) and returns the lower-case dashed form the store uses.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// SeedResult reports what Seed did with one template.
type SeedResult struct {
	Name   string
	Result templates.UpsertResult
}

// Seed upserts the given templates by name in a single transaction. Either
// every template is written or none is.
func (s *TemplateService) Seed(ctx context.Context, items []*models.Template) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(items))

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Templates(tx)
		for _, t := range items {
			if t.Name == "" {
				return common.WithDetail(common.ErrValidation, "template name is required")
			}
			res, err := repo.Upsert(ctx, t)
			if err != nil {
				return fmt.Errorf("error upserting template %q: %w", t.Name, err)
			}
			results = append(results, SeedResult{Name: t.Name, Result: res})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
