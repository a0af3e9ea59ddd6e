package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"theme-migrator/internal/migrate"
	"theme-migrator/internal/palette"
	"theme-migrator/internal/tui"
)

var previewSource string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse extracted themes without writing anything",
	Long: `Extract every theme in the source directory and browse the remapped
colors interactively. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewSource, "source", "", "Directory containing .ts theme files")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)

	source := cfg.SourceDir
	if cmd.Flags().Changed("source") {
		source = previewSource
	}

	themes, err := migrate.Scan(source)
	if err != nil {
		return fmt.Errorf("failed to scan themes: %w", err)
	}

	model := tui.NewPreviewModel(themes, palette.GetOrDefault(cfg.PaletteName))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	return nil
}
