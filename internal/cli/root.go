package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"theme-migrator/internal/config"
	"theme-migrator/internal/palette"
)

var rootCmd = &cobra.Command{
	Use:   "thememigrate",
	Short: "thememigrate - convert TypeScript theme definitions to markdown themes",
	Long: `thememigrate reads a directory of TypeScript theme definitions, extracts
each theme's id, name, type and colors, remaps the colors onto the markdown
theme token vocabulary, and writes one <id>.md file per theme.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loads config, falling back to defaults when the file is unreadable
func loadConfigOrDefault(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using defaults\n", err)
		return config.GetDefaultConfig()
	}
	return cfg
}

func stylesFor(cfg *config.Config) *palette.Styles {
	return palette.NewStyles(palette.GetOrDefault(cfg.PaletteName))
}

func displayWelcome(cmd *cobra.Command) {
	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render("T H E M E M I G R A T E"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  source: %s\n", cfg.SourceDir)
	fmt.Fprintf(out, "  output: %s\n", cfg.OutputDir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Muted.Render("Run 'thememigrate migrate' to convert, or 'thememigrate --help' for all commands."))
	fmt.Fprintln(out)
}
