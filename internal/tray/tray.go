// Package tray shows the active timer mode as a system tray icon, the
// terminal counterpart of a page favicon, and offers mode switching from the
// tray menu.
package tray

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/getlantern/systray"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/assets"
	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/theme"
)

// Actions receives tray menu clicks. Implementations must not block; the TUI
// forwards them to its program as messages.
type Actions interface {
	SelectMode(mode models.TimerMode)
	Toggle()
	Quit()
}

// Tray owns the tray icon and menu. Icon and status writes made before the
// tray is ready are kept and applied once it is.
type Tray struct {
	actions Actions
	logger  pslog.Logger
	ready   atomic.Bool

	mu     sync.Mutex
	icon   string
	mode   models.TimerMode
	status models.TimerStatus
	items  []models.TabItem

	modeItems  map[models.TimerMode]*systray.MenuItem
	toggleItem *systray.MenuItem
	quitItem   *systray.MenuItem
	done       chan struct{}

	// systray hooks, replaced in tests.
	setIcon    func([]byte)
	setTooltip func(string)
}

// New creates a tray. The logger is taken from ctx.
func New(ctx context.Context, items []models.TabItem, actions Actions) *Tray {
	return &Tray{
		actions:    actions,
		logger:     pslog.Ctx(ctx).With("component", "tray"),
		mode:       models.ModePomodoro,
		status:     models.StatusIdle,
		items:      append([]models.TabItem(nil), items...),
		modeItems:  make(map[models.TimerMode]*systray.MenuItem),
		done:       make(chan struct{}),
		setIcon:    systray.SetIcon,
		setTooltip: systray.SetTooltip,
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStart is called once the tray is ready; onExit after it has shut down.
func (t *Tray) Run(onStart, onExit func()) {
	systray.Run(func() {
		t.onReady()
		if onStart != nil {
			onStart()
		}
	}, func() {
		t.stopClicks()
		if onExit != nil {
			onExit()
		}
	})
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	systray.Quit()
}

// Ready reports whether the tray has finished initialising.
func (t *Tray) Ready() bool {
	return t.ready.Load()
}

// Target returns the tray as an icon target, or false while it is not ready.
// It matches theme.IconSink.Resolve.
func (t *Tray) Target() (theme.IconTarget, bool) {
	if !t.Ready() {
		return nil, false
	}
	return t, true
}

// SetIcon swaps the tray icon for the image registered under path.
func (t *Tray) SetIcon(path string) error {
	data, err := assets.Icon(path)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.icon = path
	t.mu.Unlock()

	if t.Ready() {
		t.setIcon(data)
		t.logger.Debug("tray icon updated", "icon", path)
	}
	return nil
}

// Icon returns the path of the last icon set.
func (t *Tray) Icon() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.icon
}

// SetState records the session state and refreshes the tooltip and menu.
func (t *Tray) SetState(mode models.TimerMode, status models.TimerStatus) {
	t.mu.Lock()
	t.mode = mode
	t.status = status
	t.mu.Unlock()

	if t.Ready() {
		t.refresh()
	}
}

// SetItems replaces the mode labels shown in the menu.
func (t *Tray) SetItems(items []models.TabItem) {
	t.mu.Lock()
	t.items = append([]models.TabItem(nil), items...)
	t.mu.Unlock()

	if t.Ready() {
		t.refresh()
	}
}

// Tooltip returns the tooltip for the current state.
func (t *Tray) Tooltip() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return formatTooltip(t.labelLocked(t.mode), t.status)
}

func (t *Tray) onReady() {
	header := systray.AddMenuItem("Tomatick", "")
	header.Disable()
	systray.AddSeparator()

	for _, mode := range models.AllModes() {
		t.modeItems[mode] = systray.AddMenuItem(mode.Label(), "Switch to "+mode.Label())
	}

	systray.AddSeparator()
	t.toggleItem = systray.AddMenuItem("Start", "Start or pause the timer")
	t.quitItem = systray.AddMenuItem("Quit", "Quit Tomatick")

	t.ready.Store(true)

	t.mu.Lock()
	icon := t.icon
	t.mu.Unlock()
	if icon != "" {
		if err := t.SetIcon(icon); err != nil {
			t.logger.Warn("tray icon failed", "icon", icon, "err", err)
		}
	}
	t.refresh()

	for mode, item := range t.modeItems {
		go t.forward(item.ClickedCh, t.selectFunc(mode))
	}
	go t.forward(t.toggleItem.ClickedCh, t.dispatchToggle)
	go t.forward(t.quitItem.ClickedCh, t.dispatchQuit)

	t.logger.Info("tray ready")
}

func (t *Tray) refresh() {
	t.mu.Lock()
	mode, status := t.mode, t.status
	labels := make(map[models.TimerMode]string, len(t.modeItems))
	for m := range t.modeItems {
		labels[m] = t.labelLocked(m)
	}
	tooltip := formatTooltip(t.labelLocked(mode), status)
	t.mu.Unlock()

	t.setTooltip(tooltip)
	for m, item := range t.modeItems {
		item.SetTitle(labels[m])
		if m == mode {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	if t.toggleItem != nil {
		t.toggleItem.SetTitle(toggleTitle(status))
	}
}

func (t *Tray) labelLocked(mode models.TimerMode) string {
	for _, item := range t.items {
		if item.Name == mode && item.Label != "" {
			return item.Label
		}
	}
	return mode.Label()
}

func (t *Tray) forward(ch <-chan struct{}, fn func()) {
	for {
		select {
		case <-t.done:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			fn()
		}
	}
}

func (t *Tray) stopClicks() {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}

func (t *Tray) selectFunc(mode models.TimerMode) func() {
	return func() {
		t.logger.Debug("tray mode selected", "mode", mode.String())
		if t.actions != nil {
			t.actions.SelectMode(mode)
		}
	}
}

func (t *Tray) dispatchToggle() {
	if t.actions != nil {
		t.actions.Toggle()
	}
}

func (t *Tray) dispatchQuit() {
	if t.actions != nil {
		t.actions.Quit()
	}
}

func toggleTitle(status models.TimerStatus) string {
	if status.IsRunning() {
		return "Pause"
	}
	return "Start"
}

func formatTooltip(label string, status models.TimerStatus) string {
	return fmt.Sprintf("Tomatick: %s (%s)", label, status)
}
