package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"theme-migrator/internal/domain"
)

var ErrSourceDir = errors.New("source directory unavailable")

// Reporter receives operator-facing progress for a run.
type Reporter interface {
	Discovered(count int)
	Generated(outputFile string, dryRun bool)
	Skipped(fileName string)
	Completed(generated int)
}

type Options struct {
	SourceDir string
	OutputDir string
	DryRun    bool
}

// Migrator converts every candidate file of a source directory into one
// markdown theme file. Files are processed sequentially and independently.
type Migrator struct {
	opts     Options
	reporter Reporter
}

func New(opts Options, reporter Reporter) *Migrator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Migrator{
		opts:     opts,
		reporter: reporter,
	}
}

// Run executes the whole batch. A file without an id is skipped and reported;
// any read or write failure aborts the run.
func (m *Migrator) Run() (*domain.MigrationRun, error) {
	run := domain.NewMigrationRun(m.opts.SourceDir, m.opts.OutputDir, m.opts.DryRun)

	if err := checkSourceDir(m.opts.SourceDir); err != nil {
		return nil, err
	}

	if !m.opts.DryRun {
		if err := os.MkdirAll(m.opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	files, err := Discover(m.opts.SourceDir)
	if err != nil {
		return nil, err
	}
	run.Discovered = len(files)
	m.reporter.Discovered(len(files))

	for _, file := range files {
		result, err := m.migrateFile(file)
		if err != nil {
			return nil, err
		}
		run.Record(result)
	}

	run.Finish()
	m.reporter.Completed(run.Generated())

	return run, nil
}

func (m *Migrator) migrateFile(file string) (*domain.FileResult, error) {
	content, err := os.ReadFile(filepath.Join(m.opts.SourceDir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	theme, err := Extract(string(content))
	if err != nil && !errors.Is(err, ErrNoThemeID) {
		return nil, err
	}
	// a blank id still matches the id pattern but cannot name an output file
	if err == nil {
		err = theme.Validate()
	}
	if err != nil {
		m.reporter.Skipped(file)
		return &domain.FileResult{FileName: file, Outcome: domain.OutcomeSkipped}, nil
	}

	outputFile := theme.OutputFileName()
	if !m.opts.DryRun {
		if err := WriteMarkdownFile(filepath.Join(m.opts.OutputDir, outputFile), theme); err != nil {
			return nil, err
		}
	}
	m.reporter.Generated(outputFile, m.opts.DryRun)

	return &domain.FileResult{
		FileName:   file,
		ThemeID:    theme.ID,
		OutputFile: outputFile,
		Outcome:    domain.OutcomeGenerated,
	}, nil
}

// Scan extracts every candidate in dir without writing anything. Files
// without an id are left out.
func Scan(dir string) ([]*domain.Theme, error) {
	if err := checkSourceDir(dir); err != nil {
		return nil, err
	}

	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	var themes []*domain.Theme
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		theme, err := Extract(string(content))
		if err != nil || theme.Validate() != nil {
			continue
		}
		themes = append(themes, theme)
	}

	return themes, nil
}

func checkSourceDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceDir, dir)
	}
	return nil
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Discovered(int)         {}
func (NopReporter) Generated(string, bool) {}
func (NopReporter) Skipped(string)         {}
func (NopReporter) Completed(int)          {}
