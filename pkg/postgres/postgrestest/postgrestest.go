// Package postgrestest starts a disposable Postgres container for
// integration tests and applies the migrations to it.
package postgrestest

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/bookmarks/pkg/postgres"
)

const (
	image    = "postgres:16-alpine"
	user     = "test"
	password = "test"
	database = "bookmarks"
)

// Start runs a Postgres container, migrates it up with the migrations at
// migrationsURL and returns its DSN. The migrations are rolled back and the
// container terminated when the test finishes. Tests are skipped in -short mode.
func Start(t testing.TB, migrationsURL string) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}

	ctx := context.Background()

	cont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: image,
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       database,
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := cont.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate postgres container: %v", err)
		}
	})

	host, err := cont.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := cont.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, password, host, port.Int(), database)

	if err := postgres.RunMigrations(migrationsURL, dsn); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		if err := postgres.RollbackMigrations(migrationsURL, dsn); err != nil {
			t.Errorf("Failed to rollback migrations: %v", err)
		}
	})

	return dsn
}
