package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"theme-migrator/internal/config"
	"theme-migrator/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage the console palette",
	Long: `Manage the palette used to color thememigrate's own output.

Examples:
  thememigrate palette list
  thememigrate palette set dracula
  thememigrate palette show`,
}

var paletteSetCmd = &cobra.Command{
	Use:   "set [palette-name]",
	Short: "Set the console palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteSet,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available palettes",
	RunE:  runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current palette",
	RunE:  runPaletteShow,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteSetCmd, paletteListCmd, paletteShowCmd)
}

func runPaletteSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !palette.Exists(name) {
		return fmt.Errorf("palette '%s' not found. Run 'thememigrate palette list' to see available palettes", name)
	}

	if err := config.UpdatePalette(name); err != nil {
		return fmt.Errorf("failed to update palette: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Palette set to '%s'\n", name)
	return nil
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)
	styles := stylesFor(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Header.Render("Available Palettes"))
	fmt.Fprintln(out)

	for _, name := range palette.Names() {
		if name == cfg.PaletteName {
			fmt.Fprintf(out, "▶ %s\n", styles.Success.Render(name+" (current)"))
			continue
		}
		fmt.Fprintf(out, "  %s\n", name)
	}

	return nil
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)

	p, err := palette.Get(cfg.PaletteName)
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	styles := palette.NewStyles(p)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("Current Palette: %s", p.Name)))
	fmt.Fprintln(out)

	colors := []struct{ label, value string }{
		{"Primary", p.Primary},
		{"Secondary", p.Secondary},
		{"Success", p.Success},
		{"Warning", p.Warning},
		{"Error", p.Error},
		{"Text", p.Text},
		{"Muted", p.Muted},
		{"Border", p.Border},
	}
	for _, c := range colors {
		fmt.Fprintf(out, "  %-10s %s %s\n", c.label+":", palette.Swatch(c.value), c.value)
	}

	return nil
}
