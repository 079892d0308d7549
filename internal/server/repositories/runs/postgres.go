package runs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// seams for tests
var (
	newID = func() string { return uuid.New().String() }
	now   = func() time.Time { return time.Now().UTC() }
)

// PostgresRepository implements run storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create assigns the id and capture time, inserts the run and returns it.
func (r *PostgresRepository) Create(ctx context.Context, run *models.Run) (*models.Run, error) {
	query := `
		INSERT INTO runs (id, user_id, template_id, status, errors, timestamp, file_name, object_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	run.ID = newID()
	run.Timestamp = now()
	if run.Errors == nil {
		run.Errors = []string{}
	}

	if _, err := r.db.ExecContext(ctx, query,
		run.ID, run.UserID, run.TemplateID, run.Status, run.Errors, run.Timestamp, run.FileName, run.ObjectKey); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return run, nil
}

// ListForUser returns the newest ListLimit runs owned by userID.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Run, error) {
	query := `SELECT id, user_id, template_id, status, errors, timestamp, file_name, object_key FROM runs
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
		`
	rows, err := r.db.QueryContext(ctx, query, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	m := pgtype.NewMap()

	result := make([]*models.Run, 0)
	for rows.Next() {
		item, err := scanRun(rows, m)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetForUser returns run runID if it belongs to userID, else common.ErrorNotFound.
func (r *PostgresRepository) GetForUser(ctx context.Context, userID, runID string) (*models.Run, error) {
	query := `SELECT id, user_id, template_id, status, errors, timestamp, file_name, object_key FROM runs
		WHERE id = $1 AND user_id = $2
		`
	item, err := scanRun(r.db.QueryRowContext(ctx, query, runID, userID), pgtype.NewMap())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// StatsForUser counts all, passed and failed runs of userID.
func (r *PostgresRepository) StatsForUser(ctx context.Context, userID string) (*models.RunStats, error) {
	stats := &models.RunStats{}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM runs WHERE user_id = $1`, userID).Scan(&stats.TotalRuns); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := r.countByStatus(ctx, userID, common.RunStatusPass, &stats.PassedRuns); err != nil {
		return nil, err
	}
	if err := r.countByStatus(ctx, userID, common.RunStatusFail, &stats.FailedRuns); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *PostgresRepository) countByStatus(ctx context.Context, userID, status string, dst *int64) error {
	query := `SELECT COUNT(*) FROM runs WHERE user_id = $1 AND status = $2`
	if err := r.db.QueryRowContext(ctx, query, userID, status).Scan(dst); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner, m *pgtype.Map) (*models.Run, error) {
	item := &models.Run{}
	if err := row.Scan(&item.ID, &item.UserID, &item.TemplateID, &item.Status,
		m.SQLScanner(&item.Errors), &item.Timestamp, &item.FileName, &item.ObjectKey); err != nil {
		return nil, err
	}
	if item.Errors == nil {
		item.Errors = []string{}
	}
	return item, nil
}
