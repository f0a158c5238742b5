package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone = 0
	overlayHelp = 1
)

// renderOverlay renders an overlay centered on top of the dimmed base view.
// Overlay rows past the bottom of the screen are dropped and rows wider than
// the screen are cut.
func renderOverlay(base, overlayContent string, width, height int) string {
	rows := strings.Split(base, "\n")
	for i, row := range rows {
		rows[i] = overlayDimStyle.Render(ansi.Strip(row))
	}

	box := strings.Split(overlayContent, "\n")
	boxWidth := 0
	for i, line := range box {
		if lipgloss.Width(line) > width {
			box[i] = ansi.Truncate(line, width, "")
		}
		if w := lipgloss.Width(box[i]); w > boxWidth {
			boxWidth = w
		}
	}

	top := max((height-len(box))/2, 0)
	left := max((width-boxWidth)/2, 0)

	for i, line := range box {
		row := top + i
		if row >= len(rows) {
			break
		}
		bg := rows[row]
		bgWidth := lipgloss.Width(bg)

		prefix := ansi.Truncate(bg, left, "")
		if gap := left - lipgloss.Width(prefix); gap > 0 {
			prefix += strings.Repeat(" ", gap)
		}
		suffix := ""
		if end := left + lipgloss.Width(line); end < bgWidth {
			suffix = ansi.Cut(bg, end, bgWidth)
		}
		rows[row] = prefix + "\033[0m" + line + "\033[0m" + suffix
	}

	return strings.Join(rows, "\n")
}
