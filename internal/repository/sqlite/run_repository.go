package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"theme-migrator/internal/domain"
	"theme-migrator/internal/repository"
)

type runRepository struct {
	db *DB
}

func NewRunRepository(db *DB) repository.RunRepository {
	return &runRepository{db: db}
}

type dbRun struct {
	ID         int64     `db:"id"`
	SourceDir  string    `db:"source_dir"`
	OutputDir  string    `db:"output_dir"`
	DryRun     bool      `db:"dry_run"`
	Discovered int       `db:"discovered"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
}

func (dr *dbRun) toRun() *domain.MigrationRun {
	return &domain.MigrationRun{
		ID:         dr.ID,
		SourceDir:  dr.SourceDir,
		OutputDir:  dr.OutputDir,
		DryRun:     dr.DryRun,
		Discovered: dr.Discovered,
		StartedAt:  dr.StartedAt,
		FinishedAt: dr.FinishedAt,
	}
}

type dbFile struct {
	ID         int64          `db:"id"`
	RunID      int64          `db:"run_id"`
	FileName   string         `db:"file_name"`
	ThemeID    sql.NullString `db:"theme_id"`
	OutputFile sql.NullString `db:"output_file"`
	Outcome    string         `db:"outcome"`
}

func (df *dbFile) toFileResult() *domain.FileResult {
	return &domain.FileResult{
		ID:         df.ID,
		RunID:      df.RunID,
		FileName:   df.FileName,
		ThemeID:    df.ThemeID.String,
		OutputFile: df.OutputFile.String,
		Outcome:    domain.Outcome(df.Outcome),
	}
}

func (r *runRepository) Create(ctx context.Context, run *domain.MigrationRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("invalid migration run: %w", err)
	}

	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = run.StartedAt
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO migration_runs (source_dir, output_dir, dry_run, discovered, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.SourceDir, run.OutputDir, run.DryRun, run.Discovered, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to create migration run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	for _, f := range run.Files {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO migration_files (run_id, file_name, theme_id, output_file, outcome)
			VALUES (?, ?, ?, ?, ?)
		`, id, f.FileName, nullString(f.ThemeID), nullString(f.OutputFile), f.Outcome)
		if err != nil {
			return fmt.Errorf("failed to record file %s: %w", f.FileName, err)
		}

		fileID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %w", err)
		}
		f.ID = fileID
		f.RunID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration run: %w", err)
	}

	run.ID = id
	return nil
}

func (r *runRepository) GetByID(ctx context.Context, id int64) (*domain.MigrationRun, error) {
	query := `
		SELECT id, source_dir, output_dir, dry_run, discovered, started_at, finished_at
		FROM migration_runs
		WHERE id = ?
	`

	var dr dbRun
	if err := r.db.GetContext(ctx, &dr, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", repository.ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to get migration run: %w", err)
	}

	run := dr.toRun()
	if err := r.attachFiles(ctx, []*domain.MigrationRun{run}); err != nil {
		return nil, err
	}

	return run, nil
}

func (r *runRepository) List(ctx context.Context, limit int) ([]*domain.MigrationRun, error) {
	query := `
		SELECT id, source_dir, output_dir, dry_run, discovered, started_at, finished_at
		FROM migration_runs
		ORDER BY started_at DESC, id DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	var rows []dbRun
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list migration runs: %w", err)
	}

	runs := make([]*domain.MigrationRun, 0, len(rows))
	for i := range rows {
		runs = append(runs, rows[i].toRun())
	}

	if err := r.attachFiles(ctx, runs); err != nil {
		return nil, err
	}

	return runs, nil
}

// attachFiles loads file results for all runs with a single query.
func (r *runRepository) attachFiles(ctx context.Context, runs []*domain.MigrationRun) error {
	if len(runs) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.MigrationRun, len(runs))
	ids := make([]int64, 0, len(runs))
	for _, run := range runs {
		byID[run.ID] = run
		ids = append(ids, run.ID)
	}

	query, args, err := sqlx.In(`
		SELECT id, run_id, file_name, theme_id, output_file, outcome
		FROM migration_files
		WHERE run_id IN (?)
		ORDER BY id
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build file query: %w", err)
	}

	var files []dbFile
	if err := r.db.SelectContext(ctx, &files, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load migration files: %w", err)
	}

	for i := range files {
		if run, ok := byID[files[i].RunID]; ok {
			run.Record(files[i].toFileResult())
		}
	}

	return nil
}

func (r *runRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM migration_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete migration run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", repository.ErrRunNotFound, id)
	}

	return nil
}

func (r *runRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM migration_runs`); err != nil {
		return fmt.Errorf("failed to clear migration runs: %w", err)
	}

	return nil
}

func (r *runRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM migration_runs`); err != nil {
		return 0, fmt.Errorf("failed to count migration runs: %w", err)
	}

	return count, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
