package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/flagx"
)

// Flags lists every option the client consumes, including the config file
// switches. Anything else on the command line is a command or its argument.
var Flags = []string{"-a", "-dir", "-t", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the server (default from Config)
//	-dir string session cache directory (default ~/.runaudit)
//	-t int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-dir", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the runaudit server")
	fs.StringVar(&cfg.SessionDir, "dir", cfg.SessionDir, "session cache directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
