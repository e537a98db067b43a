package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"avrental/internal/database/migration"

	"go.uber.org/zap"
)

var ErrNoDatabaseURL = errors.New("database url is not set")

// RunMigrations applies the SQL files in migrationsDir to the database at dbURL.
func RunMigrations(dbURL string, migrationsDir string, log *zap.Logger) error {
	if dbURL == "" {
		return ErrNoDatabaseURL
	}

	dir, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	_, err = migration.Up(dbURL, "file://"+filepath.ToSlash(dir), log)
	return err
}
