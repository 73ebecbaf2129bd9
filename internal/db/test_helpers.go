package db

import (
	"context"
	"fmt"
	"os"

	"github.com/go-pg/pg/v10"
)

// TestDBURLEnv names the variable holding the integration test database URL.
// Integration tests are skipped when it is empty.
const TestDBURLEnv = "CAMPUS_TEST_DB_URL"

func TestDBURL() string {
	return os.Getenv(TestDBURLEnv)
}

// ResetPublicSchema drops and recreates the public schema
func ResetPublicSchema(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	if err != nil {
		return fmt.Errorf("reset public schema: %w", err)
	}
	return nil
}

// EnsureTablesExist verifies that the specified tables exist in the database
func EnsureTablesExist(ctx context.Context, database *pg.DB, tables []string) error {
	for _, tbl := range tables {
		var exists bool
		_, err := database.QueryOneContext(ctx, pg.Scan(&exists), `
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = ?
			)`, tbl)
		if err != nil {
			return fmt.Errorf("check table %s exists: %w", tbl, err)
		}
		if !exists {
			return fmt.Errorf("table %q does not exist after migrations", tbl)
		}
	}
	return nil
}

// SetupTestDB connects to dsn and recreates the schema from the embedded
// migrations.
func SetupTestDB(ctx context.Context, dsn string) (*pg.DB, error) {
	opt, err := pg.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	database := pg.Connect(opt)

	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := ResetPublicSchema(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to reset schema: %w", err)
	}

	if err := Migrate(ctx, dsn); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := EnsureTablesExist(ctx, database, CampusTables); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("schema verification failed: %w", err)
	}

	return database, nil
}
