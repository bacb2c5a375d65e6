package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "bmrcalc"
	dbFileName = "bmrcalc.db"

	// EnvDBPath overrides the default database location. A .env file in
	// the working directory is honored too (loaded at the command root).
	EnvDBPath = "BMRCALC_DB"
)

// ResolveDBPath picks the database location: the explicit flag value wins,
// then the environment, then the per-user default.
func ResolveDBPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return env, nil
	}
	return DefaultDBPath()
}

func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
