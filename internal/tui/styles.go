package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/tomatick/internal/theme"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Tab styles. The active tab takes the accent color at render time.
var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1)

	inactiveTabStyle = tabStyle.
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Readout styles.
var (
	modeTitleStyle = lipgloss.NewStyle().
			Bold(true)

	durationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Control button styles.
var buttonStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Bold(true).
	Padding(0, 3).
	Align(lipgloss.Center)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

func activeTabStyle(root *theme.Root) lipgloss.Style {
	return tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(root.Accent())
}

func accentStyle(root *theme.Root) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(root.Accent())
}
