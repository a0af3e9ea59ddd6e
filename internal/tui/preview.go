package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"theme-migrator/internal/domain"
	"theme-migrator/internal/palette"
)

// PreviewModel lists extracted themes and shows the colors of the selected one.
type PreviewModel struct {
	themes   []*domain.Theme
	selected int
	styles   *palette.Styles
	keys     keyMap
	width    int
	height   int
	quitting bool
}

func NewPreviewModel(themes []*domain.Theme, p *palette.Palette) PreviewModel {
	return PreviewModel{
		themes: themes,
		styles: palette.NewStyles(p),
		keys:   defaultKeyMap(),
		width:  100,
		height: 30,
	}
}

// Selected returns the highlighted theme, or nil when there are none.
func (m PreviewModel) Selected() *domain.Theme {
	if len(m.themes) == 0 {
		return nil
	}
	return m.themes[m.selected]
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}

		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.themes)-1 {
				m.selected++
			}

		case key.Matches(msg, m.keys.Top):
			m.selected = 0

		case key.Matches(msg, m.keys.Bottom):
			if len(m.themes) > 0 {
				m.selected = len(m.themes) - 1
			}
		}
	}

	return m, nil
}

func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	if len(m.themes) == 0 {
		return "No convertible themes found.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftWidth := m.width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	left := m.styles.Pane.
		Width(leftWidth).
		Height(m.height - 4).
		Render(m.renderList(leftWidth))

	right := m.styles.Pane.
		Width(rightWidth).
		Height(m.height - 4).
		Render(m.renderColors())

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := m.styles.Header.Render(fmt.Sprintf("Theme Preview (%d)", len(m.themes)))
	help := m.styles.Muted.Render(m.keys.helpLine())

	return fmt.Sprintf("%s\n\n%s\n%s", header, main, help)
}

func (m PreviewModel) renderList(width int) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Themes"))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		if i == m.selected {
			b.WriteString(m.styles.Selected.Width(width - 4).Render("▶ " + t.ID))
		} else {
			b.WriteString(m.styles.Cell.Render(t.ID))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m PreviewModel) renderColors() string {
	t := m.Selected()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("id: %s • type: %s", t.ID, t.Variant)))
	b.WriteString("\n\n")

	entries := t.Colors.Entries()
	if len(entries) == 0 {
		b.WriteString(m.styles.Muted.Render("no mapped colors"))
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "%s %-22s %s\n", palette.Swatch(e.Value), string(e.Token), e.Value)
	}

	return b.String()
}
