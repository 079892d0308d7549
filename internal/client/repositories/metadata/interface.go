// Package metadata stores small key/value settings of the CLI, such as the
// cached access token, in the local SQLite database.
package metadata

import (
	"context"
)

// Keys used by the session cache.
const (
	KeyAccessToken = "access_token"
	KeyEmail       = "email"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
