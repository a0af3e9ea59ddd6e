package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"theme-migrator/internal/config"
	"theme-migrator/internal/domain"
	"theme-migrator/internal/migrate"
	"theme-migrator/internal/palette"
	"theme-migrator/internal/repository/sqlite"
)

var (
	migrateSource    string
	migrateOutput    string
	migrateDryRun    bool
	migrateNoHistory bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert every theme in the source directory",
	Long: `Convert every TypeScript theme in the source directory into a markdown
theme file named <id>.md in the output directory.

Files named index.ts or utils.ts, and files whose name contains "test",
are ignored. Files without an id are skipped and reported. Existing output
files are overwritten.

Examples:
  thememigrate migrate
  thememigrate migrate --source ./docs/themes --output ./themes
  thememigrate migrate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateSource, "source", config.DefaultSourceDir, "Directory containing .ts theme files")
	migrateCmd.Flags().StringVar(&migrateOutput, "output", config.DefaultOutputDir, "Directory to write .md themes to")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Report what would be generated without writing")
	migrateCmd.Flags().BoolVar(&migrateNoHistory, "no-history", false, "Do not record this run in the history database")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)

	opts := migrate.Options{
		SourceDir: cfg.SourceDir,
		OutputDir: cfg.OutputDir,
		DryRun:    migrateDryRun,
	}
	if cmd.Flags().Changed("source") {
		opts.SourceDir = migrateSource
	}
	if cmd.Flags().Changed("output") {
		opts.OutputDir = migrateOutput
	}

	historyPath := cfg.DBPath
	if migrateNoHistory {
		historyPath = ""
	}

	_, err := executeMigration(cmd.Context(), opts, historyPath, stylesFor(cfg), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return err
}

// executeMigration runs the migrator and records non-dry runs when historyPath
// is set. History failures are reported as warnings only.
func executeMigration(ctx context.Context, opts migrate.Options, historyPath string, styles *palette.Styles, out, errOut io.Writer) (*domain.MigrationRun, error) {
	run, err := migrate.New(opts, newConsoleReporter(out, styles)).Run()
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if opts.DryRun || historyPath == "" {
		return run, nil
	}

	if err := recordRun(ctx, historyPath, run); err != nil {
		fmt.Fprintf(errOut, "Warning: failed to record run history: %v\n", err)
	}

	return run, nil
}

func recordRun(ctx context.Context, dbPath string, run *domain.MigrationRun) error {
	db, err := sqlite.NewDB(sqlite.Config{Path: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	return sqlite.NewRunRepository(db).Create(ctx, run)
}
