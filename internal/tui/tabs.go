package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/theme"
)

const tabSeparator = " "

// TabsConfig configures a mode selector.
type TabsConfig struct {
	Items []models.TabItem

	// DefaultValue seeds the active tab before the first Observe. Empty or
	// invalid values fall back to pomodoro.
	DefaultValue models.TimerMode

	// Handler is told about every user selection. The owner is expected to
	// update its authoritative mode, which comes back through Observe.
	Handler func(models.TimerMode)

	// Sink receives the accent and icon writes of every observed mode change.
	Sink theme.Sink

	// Root resolves the accent for the active tab. Nil renders without accent.
	Root *theme.Root
}

// Tabs is the mode selector. Each instance owns its active tab; the sink it
// writes to is usually shared.
type Tabs struct {
	items   []models.TabItem
	active  models.TimerMode
	handler func(models.TimerMode)
	sink    theme.Sink
	root    *theme.Root

	observed models.TimerMode
	mounted  bool
}

// NewTabs creates a mode selector.
func NewTabs(cfg TabsConfig) *Tabs {
	active := cfg.DefaultValue
	if !active.Valid() {
		active = models.ModePomodoro
	}
	root := cfg.Root
	if root == nil {
		root = theme.NewRoot(models.ColorsConfig{})
	}
	return &Tabs{
		items:   append([]models.TabItem(nil), cfg.Items...),
		active:  active,
		handler: cfg.Handler,
		sink:    cfg.Sink,
		root:    root,
	}
}

// Items returns a copy of the selector items.
func (t *Tabs) Items() []models.TabItem {
	return append([]models.TabItem(nil), t.items...)
}

// SetItems replaces the item list. The active tab is left alone; the next
// observed mode change realigns it.
func (t *Tabs) SetItems(items []models.TabItem) {
	t.items = append([]models.TabItem(nil), items...)
}

// Active returns the active tab.
func (t *Tabs) Active() models.TimerMode {
	return t.active
}

// IsActive reports whether name is the active tab.
func (t *Tabs) IsActive(name models.TimerMode) bool {
	return t.active == name
}

// Observe is fed the owner's mode after every update. On the first call and
// whenever mode differs from the previously observed one it writes the accent,
// then the icon, then moves the active tab to mode. It reports whether those
// effects ran.
func (t *Tabs) Observe(mode models.TimerMode) bool {
	if t.mounted && mode == t.observed {
		return false
	}
	t.mounted = true
	t.observed = mode

	p := theme.For(mode)
	if t.sink != nil {
		t.sink.SetAccent(p.Color)
		t.sink.SetIcon(p.Icon)
	}
	t.active = mode
	return true
}

// Select handles a user selection of the item called name: the handler is
// invoked once and the tab becomes active without waiting for the owner.
func (t *Tabs) Select(name models.TimerMode) bool {
	for _, item := range t.items {
		if item.Name == name {
			if t.handler != nil {
				t.handler(item.Name)
			}
			t.active = item.Name
			return true
		}
	}
	return false
}

// Click selects the item at index.
func (t *Tabs) Click(index int) bool {
	if index < 0 || index >= len(t.items) {
		return false
	}
	return t.Select(t.items[index].Name)
}

// Next selects the item after the active one, wrapping around.
func (t *Tabs) Next() bool {
	return t.step(1)
}

// Prev selects the item before the active one, wrapping around.
func (t *Tabs) Prev() bool {
	return t.step(-1)
}

func (t *Tabs) step(delta int) bool {
	if len(t.items) == 0 {
		return false
	}
	current := t.indexOf(t.active)
	if current < 0 {
		current = 0
		if delta < 0 {
			current = len(t.items)
		}
	}
	next := (current + delta + len(t.items)) % len(t.items)
	return t.Click(next)
}

func (t *Tabs) indexOf(name models.TimerMode) int {
	for i, item := range t.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// View renders the items on a single line.
func (t *Tabs) View() string {
	active := activeTabStyle(t.root)
	parts := make([]string, 0, len(t.items))
	for _, item := range t.items {
		if item.Name == t.active {
			parts = append(parts, active.Render(item.Label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(item.Label))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(tabSeparator))
}

// Width returns the rendered width of the tab row.
func (t *Tabs) Width() int {
	return lipgloss.Width(t.View())
}

// HitTest maps a column, relative to the start of the tab row, to an item
// index. Separators and columns past the last item miss.
func (t *Tabs) HitTest(x int) (int, bool) {
	if x < 0 {
		return -1, false
	}
	sepWidth := lipgloss.Width(tabSeparator)
	start := 0
	for i, item := range t.items {
		w := lipgloss.Width(tabStyle.Render(item.Label))
		if x >= start && x < start+w {
			return i, true
		}
		start += w + sepWidth
	}
	return -1, false
}
