package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// PostgresRepository implements template storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns up to ListLimit templates ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Template, error) {
	query := `SELECT id, name, description, columns FROM templates
		ORDER BY name
		LIMIT $1
		`
	rows, err := r.db.QueryContext(ctx, query, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	// pgtype.Map is not safe for concurrent use, one per call.
	m := pgtype.NewMap()

	result := make([]*models.Template, 0)
	for rows.Next() {
		item, err := scanTemplate(rows, m)
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

// GetByID returns the template with the given id or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Template, error) {
	query := `SELECT id, name, description, columns FROM templates
		WHERE id = $1
		`
	item, err := scanTemplate(r.db.QueryRowContext(ctx, query, id), pgtype.NewMap())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Upsert inserts t or, when a template with the same name exists, replaces
// its description and columns. A row that already holds the same values is
// left alone and reported as Unchanged. The row id is stored in t.ID.
func (r *PostgresRepository) Upsert(ctx context.Context, t *models.Template) (UpsertResult, error) {
	query := `
		INSERT INTO templates (name, description, columns)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			description = EXCLUDED.description,
			columns = EXCLUDED.columns
		WHERE templates.description IS DISTINCT FROM EXCLUDED.description
			OR templates.columns IS DISTINCT FROM EXCLUDED.columns
		RETURNING id, (xmax = 0) AS inserted
	`
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}

	var inserted bool
	err := r.db.QueryRowContext(ctx, query, t.Name, t.Description, columns).Scan(&t.ID, &inserted)
	if err == nil {
		if inserted {
			return Created, nil
		}
		return Updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("db error: %w", err)
	}

	// The conflict update was skipped, so nothing was returned.
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM templates WHERE name = $1`, t.Name).Scan(&t.ID); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return Unchanged, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner, m *pgtype.Map) (*models.Template, error) {
	item := &models.Template{}
	var description sql.NullString
	if err := row.Scan(&item.ID, &item.Name, &description, m.SQLScanner(&item.Columns)); err != nil {
		return nil, err
	}
	if description.Valid {
		item.Description = &description.String
	}
	if item.Columns == nil {
		item.Columns = []string{}
	}
	return item, nil
}
