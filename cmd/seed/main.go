// Command seed loads sequencing templates into the runaudit database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/runaudit/internal/flagx"
	"github.com/dmitrijs2005/runaudit/internal/logging"
	"github.com/dmitrijs2005/runaudit/internal/server/config"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/runaudit/internal/server/seed"
	"github.com/dmitrijs2005/runaudit/internal/server/services"
)

func main() {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))).With("module", "seed")

	if err := run(ctx, logger); err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger logging.Logger) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("f", "", "YAML file with templates (built-in set when empty)")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-f"})); err != nil {
		return err
	}

	cfg := config.LoadConfig()

	items, err := seed.Load(*file)
	if err != nil {
		return fmt.Errorf("cannot load templates: %w", err)
	}

	db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	results, err := services.NewTemplateService(db, rm).Seed(ctx, items)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	for _, r := range results {
		logger.Info(ctx, "template "+r.Result.String(), "name", r.Name)
	}
	return nil
}
