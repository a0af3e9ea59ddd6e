package migrate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theme-migrator/internal/domain"
)

type recordingReporter struct {
	discovered int
	generated  []string
	skipped    []string
	dryRun     bool
	completed  int
}

func (r *recordingReporter) Discovered(count int) { r.discovered = count }

func (r *recordingReporter) Generated(outputFile string, dryRun bool) {
	r.generated = append(r.generated, outputFile)
	r.dryRun = dryRun
}

func (r *recordingReporter) Skipped(fileName string) { r.skipped = append(r.skipped, fileName) }

func (r *recordingReporter) Completed(generated int) { r.completed = generated }

func setupSourceDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"solarized.ts":      solarizedSource,
		"midnight.ts":       midnightSource,
		"broken.ts":         "export const broken = { name: 'Broken' };",
		"index.ts":          "export * from './solarized';",
		"utils.ts":          "export const id: 'helper' = 'helper';",
		"solarized.test.ts": "{ id: 'fixture' }",
		"README.md":         "{ id: 'readme' }",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestMigrator_Run(t *testing.T) {
	source := setupSourceDir(t)
	output := filepath.Join(t.TempDir(), "themes")

	reporter := &recordingReporter{}
	run, err := New(Options{SourceDir: source, OutputDir: output}, reporter).Run()
	require.NoError(t, err)

	assert.Equal(t, 3, run.Discovered)
	assert.Equal(t, 2, run.Generated())
	assert.Equal(t, 1, run.Skipped())
	assert.False(t, run.FinishedAt.IsZero())
	assert.NoError(t, run.Validate())

	assert.Equal(t, 3, reporter.discovered)
	assert.Equal(t, 2, reporter.completed)
	assert.Equal(t, []string{"broken.ts"}, reporter.skipped)
	sort.Strings(reporter.generated)
	assert.Equal(t, []string{"midnight.md", "solarized.md"}, reporter.generated)

	entries, err := os.ReadDir(output)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"midnight.md", "solarized.md"}, names)

	content, err := os.ReadFile(filepath.Join(output, "solarized.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "\nid: solarized\n")
	assert.Contains(t, string(content), "\ntype: light\n")
	assert.Contains(t, string(content), `  --text-main: "foo"`)
	assert.Contains(t, string(content), `  --accent-primary: "bar"`)
	assert.Contains(t, string(content), `  --list-hover: "bar"`)
}

func TestMigrator_RecordsFileResults(t *testing.T) {
	source := setupSourceDir(t)
	run, err := New(Options{SourceDir: source, OutputDir: t.TempDir()}, nil).Run()
	require.NoError(t, err)

	byFile := make(map[string]*domain.FileResult)
	for _, f := range run.Files {
		byFile[f.FileName] = f
	}

	require.Contains(t, byFile, "broken.ts")
	assert.Equal(t, domain.OutcomeSkipped, byFile["broken.ts"].Outcome)
	assert.Empty(t, byFile["broken.ts"].ThemeID)

	require.Contains(t, byFile, "midnight.ts")
	assert.Equal(t, domain.OutcomeGenerated, byFile["midnight.ts"].Outcome)
	assert.Equal(t, "midnight", byFile["midnight.ts"].ThemeID)
	assert.Equal(t, "midnight.md", byFile["midnight.ts"].OutputFile)
}

func TestMigrator_Idempotent(t *testing.T) {
	source := setupSourceDir(t)
	output := t.TempDir()

	_, err := New(Options{SourceDir: source, OutputDir: output}, nil).Run()
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(output, "midnight.md"))
	require.NoError(t, err)

	_, err = New(Options{SourceDir: source, OutputDir: output}, nil).Run()
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(output, "midnight.md"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMigrator_MissingSourceDir(t *testing.T) {
	output := filepath.Join(t.TempDir(), "themes")

	run, err := New(Options{SourceDir: filepath.Join(t.TempDir(), "missing"), OutputDir: output}, nil).Run()
	assert.ErrorIs(t, err, ErrSourceDir)
	assert.Nil(t, run)
}

func TestMigrator_SourceIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "themes.ts")
	require.NoError(t, os.WriteFile(file, []byte(solarizedSource), 0644))

	_, err := New(Options{SourceDir: file, OutputDir: t.TempDir()}, nil).Run()
	assert.ErrorIs(t, err, ErrSourceDir)
}

func TestMigrator_DryRun(t *testing.T) {
	source := setupSourceDir(t)
	output := filepath.Join(t.TempDir(), "themes")

	reporter := &recordingReporter{}
	run, err := New(Options{SourceDir: source, OutputDir: output, DryRun: true}, reporter).Run()
	require.NoError(t, err)

	assert.True(t, run.DryRun)
	assert.Equal(t, 2, run.Generated())
	assert.True(t, reporter.dryRun)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestMigrator_DuplicateIDOverwrites(t *testing.T) {
	source := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(source, "a.ts"), []byte(`{ id: 'dup', name: 'First' }`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(source, "b.ts"), []byte(`{ id: 'dup', name: 'Second' }`), 0644))
	output := t.TempDir()

	run, err := New(Options{SourceDir: source, OutputDir: output}, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, run.Generated())

	content, err := os.ReadFile(filepath.Join(output, "dup.md"))
	require.NoError(t, err)
	name := "name: First\n"
	if run.Files[1].FileName == "b.ts" {
		name = "name: Second\n"
	}
	assert.True(t, strings.Contains(string(content), name))
}

func TestMigrator_BlankIDSkipped(t *testing.T) {
	source := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(source, "blank.ts"), []byte(`{ id: '   ', colors: { primary: '#fff' } }`), 0644))
	output := t.TempDir()

	reporter := &recordingReporter{}
	run, err := New(Options{SourceDir: source, OutputDir: output}, reporter).Run()
	require.NoError(t, err)

	assert.Equal(t, 0, run.Generated())
	assert.Equal(t, []string{"blank.ts"}, reporter.skipped)

	entries, err := os.ReadDir(output)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScan(t *testing.T) {
	source := setupSourceDir(t)

	themes, err := Scan(source)
	require.NoError(t, err)

	var ids []string
	for _, th := range themes {
		ids = append(ids, th.ID)
	}
	assert.ElementsMatch(t, []string{"solarized", "midnight"}, ids)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrSourceDir)
}
