package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/flagx"
)

var serverFlags = []string{"-a", "-g", "-d", "-s", "-t", "-o", "-l", "-m", "-u", "-p", "-b", "-r", "-e"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-g string   gRPC health bind address (empty disables)
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-o string   allowed CORS origins, comma separated
//	-l int      auth requests per minute per IP
//	-m int      max upload size, bytes
//	-archive    archive uploaded files in S3
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-r string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Token validity is given in whole minutes and converted to time.Duration.
// Without -t the current duration is left untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgsBool(os.Args[1:], serverFlags, []string{"-archive"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.CORSOrigins, "o", config.CORSOrigins, "allowed CORS origins")
	fs.IntVar(&config.RateLimitAuth, "l", config.RateLimitAuth, "auth requests per minute per IP")
	fs.IntVar(&config.MaxUploadSize, "m", config.MaxUploadSize, "max upload size in bytes")
	fs.BoolVar(&config.ArchiveUploads, "archive", config.ArchiveUploads, "archive uploaded files in S3")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides the duration only when given; whole minutes would
	// truncate a finer value loaded from JSON.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		}
	})
}
