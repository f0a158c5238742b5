package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/tomatick/internal/models"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

func helpSections(items []models.TabItem) []helpSection {
	modes := make([]helpKey, 0, len(items)+2)
	for i, item := range items {
		modes = append(modes, helpKey{fmt.Sprintf("%d", i+1), item.Label})
	}
	modes = append(modes,
		helpKey{"←/→ h/l", "Previous / next mode"},
		helpKey{"click", "Select a tab"},
	)

	return []helpSection{
		{title: "Modes", keys: modes},
		{
			title: "Timer",
			keys: []helpKey{
				{"Space/Enter", "Start or pause"},
				{"r", "Reset"},
			},
		},
		{
			title: "General",
			keys: []helpKey{
				{"?", "Toggle help"},
				{"q / Ctrl+c", "Quit"},
			},
		},
	}
}

// renderHelp renders the help overlay content.
func renderHelp(width int, items []models.TabItem) string {
	maxWidth := 48
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	sections := []string{overlayTitleStyle.Render("Keyboard Shortcuts")}
	for _, sec := range helpSections(items) {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
