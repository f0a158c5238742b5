package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/tomatick/internal/models"
)

func renderStatusBar(m *Model, width int) string {
	// Error display
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	// Reload indicator
	if m.showReloaded {
		return renderNoticeBar("Settings reloaded", width)
	}

	left := " " + getKeyHints(m)
	right := renderStatusBadge(m.session.Status()) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(left, width, "")
	}
	return statusBarStyle.Width(width).Render(line)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Esc", "close") + "  " + keyHint("q", "quit")
	}

	return keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " +
		keyHint("1-3", "mode") + "  " + keyHint("Space", m.controls.Label()) + "  " +
		keyHint("r", "reset")
}

func renderStatusBadge(status models.TimerStatus) string {
	switch status {
	case models.StatusRunning:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Render("● Running")
	case models.StatusPaused:
		return lipgloss.NewStyle().Foreground(colorYellow).Render("● Paused")
	default:
		return lipgloss.NewStyle().Foreground(colorDim).Render("● Idle")
	}
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(ansi.Truncate(" "+msg, width, "…"))
}

func renderNoticeBar(msg string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(msg))
}
