package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Smallest terminal the layout fits in: header tabs plus status bar hints.
const (
	minWidth  = 60
	minHeight = 12
)

// screenLayout holds computed rows and columns for rendering and mouse hit
// testing. Rows are absolute screen rows.
type screenLayout struct {
	width        int
	bodyTop      int
	bodyHeight   int
	readoutTop   int
	buttonTop    int
	buttonLeft   int
	buttonWidth  int
	buttonHeight int
}

func computeLayout(width, height, readoutHeight, buttonWidth, buttonHeight int) screenLayout {
	// Reserve: 1 line header, 1 line status bar
	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	top := (bodyHeight - readoutHeight - buttonHeight) / 2
	if top < 0 {
		top = 0
	}
	left := (width - buttonWidth) / 2
	if left < 0 {
		left = 0
	}

	readoutTop := 1 + top
	return screenLayout{
		width:        width,
		bodyTop:      1,
		bodyHeight:   bodyHeight,
		readoutTop:   readoutTop,
		buttonTop:    readoutTop + readoutHeight,
		buttonLeft:   left,
		buttonWidth:  buttonWidth,
		buttonHeight: buttonHeight,
	}
}

// inButton reports whether the screen cell x,y is on the control button.
func (l screenLayout) inButton(x, y int) bool {
	return x >= l.buttonLeft && x < l.buttonLeft+l.buttonWidth &&
		y >= l.buttonTop && y < l.buttonTop+l.buttonHeight
}

// renderBody centers the readout lines and the button in the body area.
func renderBody(readout []string, button string, l screenLayout) string {
	lines := make([]string, 0, l.bodyHeight)
	for row := l.bodyTop; row < l.readoutTop; row++ {
		lines = append(lines, "")
	}
	for _, line := range readout {
		lines = append(lines, centerLine(line, l.width))
	}
	pad := strings.Repeat(" ", l.buttonLeft)
	for _, line := range strings.Split(button, "\n") {
		lines = append(lines, pad+line)
	}
	for len(lines) < l.bodyHeight {
		lines = append(lines, "")
	}
	return truncateContent(strings.Join(lines, "\n"), l.width, l.bodyHeight)
}

func centerLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return ansi.Truncate(line, width, "")
	}
	return strings.Repeat(" ", (width-w)/2) + line
}

// truncateContent ensures content fits within the given dimensions.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	// Limit to height
	if len(lines) > height {
		lines = lines[:height]
	}

	// Truncate long lines (ANSI-aware)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}
