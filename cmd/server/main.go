// Command server runs the runaudit HTTP API (and the optional gRPC health
// endpoint) until it receives SIGINT, SIGTERM or SIGQUIT.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/runaudit/internal/server"
	"github.com/dmitrijs2005/runaudit/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	app.Run(ctx)
}
