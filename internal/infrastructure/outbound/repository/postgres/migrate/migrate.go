package migrate

import (
	"errors"
	"fmt"
	"log/slog"

	ports "blog-platform/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Up applies every pending migration found under migrationsPath.
func Up(dsn, migrationsPath string, log ports.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer closeMigrator(m, log)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("Migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}

// Down rolls back the given number of migrations.
func Down(dsn, migrationsPath string, steps int, log ports.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer closeMigrator(m, log)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	log.Info("Migrations rolled back", slog.Int("steps", steps))
	return nil
}

func closeMigrator(m *migrate.Migrate, log ports.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Warn("Failed to close migration source", slog.String("error", srcErr.Error()))
	}
	if dbErr != nil {
		log.Warn("Failed to close migration database", slog.String("error", dbErr.Error()))
	}
}
