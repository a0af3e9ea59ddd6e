package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"theme-migrator/internal/config"
	"theme-migrator/internal/palette"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change the settings stored in ~/.thememigrate/config.yaml.

Keys: source_dir, output_dir, db_path, palette

Examples:
  thememigrate config show
  thememigrate config set source_dir ./docs/themes`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	styles := stylesFor(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Header.Render("Configuration"))
	fmt.Fprintf(out, "  %-11s %s\n", "file:", config.GetConfigFile())
	fmt.Fprintf(out, "  %-11s %s\n", "source_dir:", cfg.SourceDir)
	fmt.Fprintf(out, "  %-11s %s\n", "output_dir:", cfg.OutputDir)
	fmt.Fprintf(out, "  %-11s %s\n", "db_path:", cfg.DBPath)
	fmt.Fprintf(out, "  %-11s %s\n", "palette:", cfg.PaletteName)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if key == "palette" && !palette.Exists(value) {
		return fmt.Errorf("palette '%s' not found. Run 'thememigrate palette list' to see available palettes", value)
	}

	if err := config.Set(key, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s set to '%s'\n", key, value)
	return nil
}
