package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/theme"
)

const buttonWidth = 14

// ControlsConfig configures the timer control.
type ControlsConfig struct {
	Toggle func()

	// Reset is accepted so owners can hand over their full transport API, but
	// no control is bound to it. Resetting is an owner-level key binding.
	Reset func()

	Root *theme.Root
}

// Controls renders the single start/pause button and delegates presses to its
// owner. It keeps no state beyond the last status it was shown.
type Controls struct {
	status models.TimerStatus
	toggle func()
	reset  func()
	root   *theme.Root
}

// NewControls creates a timer control.
func NewControls(cfg ControlsConfig) *Controls {
	root := cfg.Root
	if root == nil {
		root = theme.NewRoot(models.ColorsConfig{})
	}
	return &Controls{
		status: models.StatusIdle,
		toggle: cfg.Toggle,
		reset:  cfg.Reset,
		root:   root,
	}
}

// SetStatus updates the status the button reflects.
func (c *Controls) SetStatus(status models.TimerStatus) {
	c.status = status
}

// Label returns "pause" while running and "start" otherwise.
func (c *Controls) Label() string {
	if c.status.IsRunning() {
		return "pause"
	}
	return "start"
}

// Press invokes the toggle callback once.
func (c *Controls) Press() {
	if c.toggle != nil {
		c.toggle()
	}
}

// View renders the button. A running timer shows the button pressed in,
// with a dim border instead of the accent.
func (c *Controls) View() string {
	style := buttonStyle.Width(buttonWidth)
	if c.status.IsRunning() {
		style = style.BorderForeground(colorDim).Foreground(colorDim)
	} else {
		style = style.BorderForeground(c.root.Accent()).Foreground(c.root.Accent())
	}
	return style.Render(c.Label())
}

// Size returns the rendered width and height of the button.
func (c *Controls) Size() (int, int) {
	view := c.View()
	return lipgloss.Width(view), lipgloss.Height(view)
}
