package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/tomatick/internal/theme"
)

const appName = "Tomatick"

// headerPrefix is the dot and app name ahead of the tab row.
func headerPrefix(root *theme.Root) string {
	dot := accentStyle(root).Render("●")
	return " " + dot + " " + headerStyle.Render(appName) + "  "
}

// tabsOffset returns the column the tab row starts at.
func tabsOffset(root *theme.Root) int {
	return lipgloss.Width(headerPrefix(root))
}

func renderHeader(tabs *Tabs, root *theme.Root, width int) string {
	line := headerPrefix(root) + tabs.View()
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	return line
}
