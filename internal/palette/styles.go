package palette

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Pane     lipgloss.Style
}

// creates all styles based on the given palette
func NewStyles(p *Palette) *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Secondary)),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.HeaderFg)).
			Background(lipgloss.Color(p.HeaderBg)).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.SelectedFg)).
			Background(lipgloss.Color(p.SelectedBg)),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(1),
	}
}

// Swatch renders a small block filled with the given color value.
func Swatch(color string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Render("    ")
}
