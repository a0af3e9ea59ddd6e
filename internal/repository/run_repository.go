package repository

import (
	"context"
	"errors"

	"theme-migrator/internal/domain"
)

var ErrRunNotFound = errors.New("migration run not found")

// RunRepository stores migration run summaries and their per-file outcomes.
type RunRepository interface {
	// Create stores the run and its file results in one transaction.
	Create(ctx context.Context, run *domain.MigrationRun) error

	GetByID(ctx context.Context, id int64) (*domain.MigrationRun, error)

	// List returns runs newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.MigrationRun, error)

	Delete(ctx context.Context, id int64) error

	Clear(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
}
