// Package config loads runtime configuration for the runaudit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string    base URL of the runaudit server
//	-dir string  session cache directory
//	-t int       request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "session_dir": "/home/me/.runaudit",
//	  "request_timeout": "30s"
//	}
package config
