package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/runaudit/internal/client/client"
	"github.com/dmitrijs2005/runaudit/internal/client/config"
	"github.com/dmitrijs2005/runaudit/internal/client/services"
	"github.com/dmitrijs2005/runaudit/internal/filex"
)

// SessionDBName is the session cache file inside the session directory.
const SessionDBName = "session.db"

type App struct {
	config  *config.Config
	auth    services.AuthService
	runs    services.RunService
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	destDir string
}

// NewApp opens the session cache and builds the API services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.SessionDir(c.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, SessionDBName))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &App{
		config:  c,
		auth:    services.NewAuthService(apiClient, db),
		runs:    services.NewRunService(apiClient, db),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		destDir: wd,
	}, nil
}

// Run executes args as a single command, or starts the interactive shell
// when args is empty. It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "runaudit CLI (type 'help' for commands)")
		runREPL(ctx, a, a.status, a.reader, a.out)
		return 0
	}

	if err := a.Execute(ctx, args); err != nil {
		reportError(a.out, err)
		return 1
	}
	return 0
}

// Close releases the session cache.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// status is shown in the shell prompt.
func (a *App) status() string {
	email, err := a.auth.Email(context.Background())
	if err != nil || email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", email)
}
