// Package cli implements the runaudit terminal client.
//
// App wires the configuration, the SQLite session cache and the HTTP API
// services. Given arguments it runs one command and exits; without arguments
// it starts an interactive shell (see runREPL) that accepts the same
// commands. Passwords are read without echo.
package cli
