package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies the schema and stamps the version marker, so a
// fresh or round-tripped database always reports SchemaVersion.
func MigrateUp(db *sql.DB) error {
	if err := applyMigrations(db, ".up.sql"); err != nil {
		return err
	}
	return stampSchemaVersion(db)
}

func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql")
}

func applyMigrations(db *sql.DB, suffix string) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(sqlBytes)); execErr != nil {
			return fmt.Errorf("apply migration %s (schema v%d): %w", name, SchemaVersion, execErr)
		}
	}
	return nil
}

func stampSchemaVersion(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO schema_info (version) SELECT ? WHERE NOT EXISTS (SELECT 1 FROM schema_info)`,
		SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("stamp schema version %d: %w", SchemaVersion, err)
	}
	return nil
}
