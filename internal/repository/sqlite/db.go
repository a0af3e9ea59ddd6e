package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sqlx.DB
}

type Config struct {
	Path string
}

// creates a new db conn & runs migrations
func NewDB(cfg Config) (*DB, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single connection keeps :memory: databases shared across queries
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{DB: db}, nil
}

// executes db schema
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS migration_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_dir TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		dry_run BOOLEAN NOT NULL DEFAULT 0,
		discovered INTEGER NOT NULL DEFAULT 0,
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		finished_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(source_dir != ''),
		CHECK(output_dir != ''),
		CHECK(discovered >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_migration_runs_started_at ON migration_runs(started_at);

	CREATE TABLE IF NOT EXISTS migration_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		file_name TEXT NOT NULL,
		theme_id TEXT,
		output_file TEXT,
		outcome TEXT NOT NULL,

		FOREIGN KEY (run_id) REFERENCES migration_runs(id) ON DELETE CASCADE,
		CHECK(file_name != ''),
		CHECK(outcome IN ('generated', 'skipped'))
	);

	CREATE INDEX IF NOT EXISTS idx_migration_files_run_id ON migration_files(run_id);
	CREATE INDEX IF NOT EXISTS idx_migration_files_theme_id ON migration_files(theme_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
