package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Up applies every pending migration from sourceURL and returns the schema
// version the database ends on.
func Up(dbURL, sourceURL string, log *zap.Logger) (uint, error) {
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return 0, fmt.Errorf("open migrations %s: %w", sourceURL, err)
	}
	defer m.Close()

	m.Log = &zapLogger{sugar: log.Sugar().Named("migrate"), verbose: log.Core().Enabled(zap.DebugLevel)}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("schema already up to date")
	case err != nil:
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	log.Info("schema migrated", zap.Uint("version", version))
	return version, nil
}

// zapLogger satisfies migrate.Logger.
type zapLogger struct {
	sugar   *zap.SugaredLogger
	verbose bool
}

func (l *zapLogger) Printf(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

func (l *zapLogger) Verbose() bool {
	return l.verbose
}
