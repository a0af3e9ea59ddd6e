package domain

import (
	"errors"
	"strings"
	"time"
)

type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeSkipped   Outcome = "skipped"
)

func isValidOutcome(o Outcome) bool {
	return o == OutcomeGenerated || o == OutcomeSkipped
}

// FileResult is the terminal outcome of one candidate input file.
type FileResult struct {
	ID         int64   `db:"id" json:"id"`
	RunID      int64   `db:"run_id" json:"run_id"`
	FileName   string  `db:"file_name" json:"file_name"`
	ThemeID    string  `db:"theme_id" json:"theme_id,omitempty"`
	OutputFile string  `db:"output_file" json:"output_file,omitempty"`
	Outcome    Outcome `db:"outcome" json:"outcome"`
}

func (f *FileResult) Validate() error {
	if strings.TrimSpace(f.FileName) == "" {
		return errors.New("file name cannot be empty")
	}

	if !isValidOutcome(f.Outcome) {
		return errors.New("invalid outcome: must be generated or skipped")
	}

	if f.Outcome == OutcomeGenerated && f.ThemeID == "" {
		return errors.New("generated file must carry a theme id")
	}

	return nil
}

// MigrationRun summarizes one pass of the migrator.
type MigrationRun struct {
	ID         int64         `db:"id" json:"id"`
	SourceDir  string        `db:"source_dir" json:"source_dir"`
	OutputDir  string        `db:"output_dir" json:"output_dir"`
	DryRun     bool          `db:"dry_run" json:"dry_run"`
	Discovered int           `db:"discovered" json:"discovered"`
	StartedAt  time.Time     `db:"started_at" json:"started_at"`
	FinishedAt time.Time     `db:"finished_at" json:"finished_at"`
	Files      []*FileResult `db:"-" json:"files,omitempty"`
}

func NewMigrationRun(sourceDir, outputDir string, dryRun bool) *MigrationRun {
	return &MigrationRun{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		DryRun:    dryRun,
		StartedAt: time.Now().UTC(),
	}
}

func (r *MigrationRun) Record(result *FileResult) {
	r.Files = append(r.Files, result)
}

func (r *MigrationRun) Generated() int {
	return r.count(OutcomeGenerated)
}

func (r *MigrationRun) Skipped() int {
	return r.count(OutcomeSkipped)
}

func (r *MigrationRun) count(o Outcome) int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == o {
			n++
		}
	}
	return n
}

func (r *MigrationRun) Finish() {
	r.FinishedAt = time.Now().UTC()
}

func (r *MigrationRun) Validate() error {
	if strings.TrimSpace(r.SourceDir) == "" {
		return errors.New("source directory cannot be empty")
	}

	if strings.TrimSpace(r.OutputDir) == "" {
		return errors.New("output directory cannot be empty")
	}

	if r.Discovered < 0 {
		return errors.New("discovered count cannot be negative")
	}

	for _, f := range r.Files {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (r *MigrationRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
