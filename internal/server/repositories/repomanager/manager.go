package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/runs"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/templates"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle (a *sql.DB or a
// *sql.Tx) and owns the schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Templates(db dbx.DBTX) templates.Repository
	Runs(db dbx.DBTX) runs.Repository
}
