// Command client is the runaudit terminal client.
//
//	client [-a url] [-dir path] [-t seconds] [-c config.json] [command args...]
//
// Without a command it starts an interactive shell.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/runaudit/internal/client/cli"
	"github.com/dmitrijs2005/runaudit/internal/client/config"
	"github.com/dmitrijs2005/runaudit/internal/flagx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		stop()
		log.Fatalf("%v", err)
	}

	code := app.Run(ctx, flagx.Positional(os.Args[1:], config.Flags))

	_ = app.Close()
	stop()
	os.Exit(code)
}
