package postgres

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// schema locations relative to the usual working directories
var schemaPaths = []string{
	"script/migration/schema.sql",
	"../script/migration/schema.sql",
	"../../script/migration/schema.sql",
	"../../../script/migration/schema.sql",
}

func findSchema() (string, error) {
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	wd, _ := os.Getwd()
	return "", fmt.Errorf("schema.sql not found (looked in %v from %s)", schemaPaths, wd)
}

// RunMigrations executes script/migration/schema.sql. The schema is idempotent.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	schemaPath, err := findSchema()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", schemaPath, err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}
	return nil
}
