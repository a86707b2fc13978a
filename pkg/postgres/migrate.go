package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending migrations found at sourceURL (e.g. "file://migrations") to the database at dsn.
func RunMigrations(sourceURL, dsn string) error {
	const op = "postgres.RunMigrations"

	return withMigrate(op, sourceURL, dsn, (*migrate.Migrate).Up)
}

// RollbackMigrations reverts every migration found at sourceURL.
func RollbackMigrations(sourceURL, dsn string) error {
	const op = "postgres.RollbackMigrations"

	return withMigrate(op, sourceURL, dsn, (*migrate.Migrate).Down)
}

func withMigrate(op, sourceURL, dsn string, fn func(*migrate.Migrate) error) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("%s: failed to initialize migrations: %w", op, err)
	}
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	return nil
}
