package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSessionDirName is created under the user's home directory when no
// session directory is configured.
const DefaultSessionDirName = ".runaudit"

var userHomeDir = os.UserHomeDir

// EnsureDir creates dir (and parents) with owner-only permissions and returns
// its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// SessionDir resolves the CLI session directory. An empty dir means
// ~/.runaudit. The directory is created if missing.
func SessionDir(dir string) (string, error) {
	if dir == "" {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		dir = filepath.Join(home, DefaultSessionDirName)
	}
	return EnsureDir(dir)
}
