package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"theme-migrator/internal/domain"
	"theme-migrator/internal/palette"
	"theme-migrator/internal/repository"
	"theme-migrator/internal/repository/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded migration runs",
	Long: `List recorded migration runs, newest first.

Examples:
  thememigrate history
  thememigrate history --limit 5
  thememigrate history show 3
  thememigrate history delete 3
  thememigrate history clear`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the per-file outcomes of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd, historyClearCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list (0 for all)")
}

func withRunRepository(dbPath string, fn func(repo repository.RunRepository) error) error {
	db, err := sqlite.NewDB(sqlite.Config{Path: dbPath})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return fn(sqlite.NewRunRepository(db))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)

	return withRunRepository(cfg.DBPath, func(repo repository.RunRepository) error {
		runs, err := repo.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No migration runs recorded yet."))
			return nil
		}

		fmt.Fprintln(out, renderRunsTable(runs, styles))
		return nil
	})
}

func parseRunID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run id %q", arg)
	}
	return id, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)

	return withRunRepository(cfg.DBPath, func(repo repository.RunRepository) error {
		run, err := repo.GetByID(cmd.Context(), id)
		if errors.Is(err, repository.ErrRunNotFound) {
			return fmt.Errorf("run %d not found. Run 'thememigrate history' to list runs", id)
		}
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderRunDetail(run, styles))
		return nil
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)

	return withRunRepository(cfg.DBPath, func(repo repository.RunRepository) error {
		if err := deleteRun(cmd.Context(), repo, id); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Deleted run %d", id)))
		return nil
	})
}

func deleteRun(ctx context.Context, repo repository.RunRepository, id int64) error {
	err := repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRunNotFound) {
		return fmt.Errorf("run %d not found. Run 'thememigrate history' to list runs", id)
	}
	return err
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)

	return withRunRepository(cfg.DBPath, func(repo repository.RunRepository) error {
		ctx := cmd.Context()

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if err := repo.Clear(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Cleared %d runs", count)))
		return nil
	})
}

func newTable(styles *palette.Styles) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})
}

func renderRunsTable(runs []*domain.MigrationRun, styles *palette.Styles) string {
	t := newTable(styles).
		Headers("ID", "Started", "Source", "Output", "Found", "Generated", "Skipped")

	for _, run := range runs {
		t.Row(
			strconv.FormatInt(run.ID, 10),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.SourceDir,
			run.OutputDir,
			strconv.Itoa(run.Discovered),
			strconv.Itoa(run.Generated()),
			strconv.Itoa(run.Skipped()),
		)
	}

	return t.Render()
}

func renderRunDetail(run *domain.MigrationRun, styles *palette.Styles) string {
	header := fmt.Sprintf(" Run %d ", run.ID)
	summary := fmt.Sprintf("%s → %s • %d found, %d generated, %d skipped • %s",
		run.SourceDir, run.OutputDir,
		run.Discovered, run.Generated(), run.Skipped(),
		run.Duration().Round(time.Millisecond))

	t := newTable(styles).Headers("File", "Outcome", "Theme", "Output")
	for _, f := range run.Files {
		t.Row(f.FileName, string(f.Outcome), f.ThemeID, f.OutputFile)
	}

	return fmt.Sprintf("%s\n%s\n%s\n", styles.Header.Render(header), styles.Muted.Render(summary), t.Render())
}
