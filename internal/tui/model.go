package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/session"
	"github.com/watchfire-io/tomatick/internal/theme"
	"github.com/watchfire-io/tomatick/internal/tray"
	"github.com/watchfire-io/tomatick/internal/watcher"
)

// readoutHeight is the number of lines above the button: mode title,
// duration, status and a spacer.
const readoutHeight = 4

// Options configures the TUI.
type Options struct {
	Settings *models.Settings

	// Mode overrides Settings.DefaultMode when valid.
	Mode models.TimerMode

	// SettingsPath is reloaded whenever Watcher reports a change.
	SettingsPath string
	Watcher      *watcher.Watcher

	// Tray shows the mode icon when non-nil.
	Tray *tray.Tray
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	settings     *models.Settings
	settingsPath string
	watcher      *watcher.Watcher
	tray         *tray.Tray
	logger       pslog.Logger

	// Session state and child components
	session  *session.Session
	tabs     *Tabs
	controls *Controls
	root     *theme.Root

	// UI state
	activeOverlay int
	width         int
	height        int

	// Status display
	err          error
	showReloaded bool

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model. The selector is mounted here so the
// accent, icon and active tab are in place before the first frame.
func NewModel(ctx context.Context, opts Options, program *programRef) Model {
	settings := opts.Settings
	if settings == nil {
		settings = models.NewSettings()
	}
	mode := settings.DefaultMode
	if opts.Mode.Valid() {
		mode = opts.Mode
	}
	items := settings.TabItems()
	logger := pslog.Ctx(ctx).With("component", "tui")

	root := theme.NewRoot(settings.Appearance.Colors)
	sess := session.New(mode, items)

	sinks := theme.Sinks{theme.RootSink{Root: root}}
	if opts.Tray != nil {
		tr := opts.Tray
		sinks = append(sinks, theme.IconSink{
			Resolve: tr.Target,
			OnError: func(path string, err error) {
				logger.Warn("tray icon failed", "icon", path, "err", err)
			},
		})
		tr.SetItems(items)
		tr.SetState(sess.Mode(), sess.Status())
	}

	sess.OnChange = func(c session.Change) {
		logger.Info("session changed",
			"from_mode", c.FromMode.String(), "to_mode", c.ToMode.String(),
			"from_status", string(c.FromStatus), "to_status", string(c.ToStatus))
		if opts.Tray != nil {
			opts.Tray.SetState(c.ToMode, c.ToStatus)
		}
	}

	tabs := NewTabs(TabsConfig{
		Items:        items,
		DefaultValue: sess.Mode(),
		Handler: func(mode models.TimerMode) {
			sess.SetMode(mode)
		},
		Sink: sinks,
		Root: root,
	})
	controls := NewControls(ControlsConfig{
		Toggle: sess.Toggle,
		Reset:  sess.Reset,
		Root:   root,
	})

	tabs.Observe(sess.Mode())
	controls.SetStatus(sess.Status())

	return Model{
		settings:     settings,
		settingsPath: opts.SettingsPath,
		watcher:      opts.Watcher,
		tray:         opts.Tray,
		logger:       logger,
		session:      sess,
		tabs:         tabs,
		controls:     controls,
		root:         root,
		program:      program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.windowTitle()),
		waitSettingsCmd(m.watcher),
	)
}

// Update processes messages and returns an updated model and commands. Once
// the message is handled the selector observes the session mode, so accent,
// icon and active tab always follow the committed state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.afterUpdate())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m.handleKey(msg)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// ── Tray requests ──────────────────────────────────────────────
	case ModeRequestMsg:
		m.session.SetMode(msg.Mode)
		return nil

	case ToggleRequestMsg:
		m.session.Toggle()
		return nil

	case QuitRequestMsg:
		return m.doQuit()

	// ── Settings reload ────────────────────────────────────────────
	case settingsFileMsg:
		m.logger.Info("settings changed on disk", "path", msg.Path)
		cmds = append(cmds, reloadSettingsCmd(m.settingsPath), waitSettingsCmd(m.watcher))
		return tea.Batch(cmds...)

	case watcherClosedMsg:
		m.logger.Debug("settings watcher closed")
		return nil

	case SettingsChangedMsg:
		m.applySettings(msg.Settings)
		m.showReloaded = true
		return clearNoticeAfter(3 * time.Second)

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		m.logger.Error("tui error", "err", msg.Err)
		return clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return nil

	case ClearNoticeMsg:
		m.showReloaded = false
		return nil
	}

	return nil
}

// afterUpdate syncs the children with the session after every update.
func (m *Model) afterUpdate() tea.Cmd {
	m.controls.SetStatus(m.session.Status())

	mode := m.session.Mode()
	if !m.tabs.Observe(mode) {
		return nil
	}
	m.logger.Debug("mode presented", "mode", mode.String(), "icon", theme.For(mode).Icon)
	return tea.SetWindowTitle(m.windowTitle())
}

func (m *Model) applySettings(settings *models.Settings) {
	if settings == nil {
		return
	}
	m.settings = settings
	items := settings.TabItems()
	m.session.SetItems(items)
	m.tabs.SetItems(items)
	m.root.SetPalette(settings.Appearance.Colors)
	if m.tray != nil {
		m.tray.SetItems(items)
	}
	m.logger.Info("settings applied")
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, globalKeys.Quit) {
		return m.doQuit()
	}

	// Overlay captures everything except quit
	if m.activeOverlay != overlayNone {
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil
	}

	switch {
	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp

	case key.Matches(msg, modeKeys.Mode1):
		m.tabs.Click(0)
	case key.Matches(msg, modeKeys.Mode2):
		m.tabs.Click(1)
	case key.Matches(msg, modeKeys.Mode3):
		m.tabs.Click(2)
	case key.Matches(msg, modeKeys.Prev):
		m.tabs.Prev()
	case key.Matches(msg, modeKeys.Next):
		m.tabs.Next()

	case key.Matches(msg, controlKeys.Toggle):
		m.controls.Press()
	case key.Matches(msg, controlKeys.Reset):
		m.session.Reset()
	}
	return nil
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.activeOverlay != overlayNone {
		m.activeOverlay = overlayNone
		return nil
	}

	// Header row: tab switching
	if msg.Y == 0 {
		if i, ok := m.tabs.HitTest(msg.X - tabsOffset(m.root)); ok {
			m.tabs.Click(i)
		}
		return nil
	}

	if m.layout().inButton(msg.X, msg.Y) {
		m.controls.Press()
	}
	return nil
}

// doQuit performs clean shutdown: clear program ref, quit.
func (m *Model) doQuit() tea.Cmd {
	if m.program != nil {
		m.program.Clear()
	}
	return tea.Quit
}

func (m *Model) layout() screenLayout {
	w, h := m.controls.Size()
	return computeLayout(m.width, m.height, readoutHeight, w, h)
}

func (m *Model) windowTitle() string {
	return fmt.Sprintf("%s | %s", m.modeLabel(), appName)
}

func (m *Model) modeLabel() string {
	mode := m.session.Mode()
	for _, item := range m.tabs.Items() {
		if item.Name == mode {
			return item.Label
		}
	}
	return mode.Label()
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	// Minimum size check
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+
						lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(m.tabs, m.root, m.width)
	body := renderBody(m.readout(), m.controls.View(), m.layout())
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)

	if m.activeOverlay == overlayHelp {
		view = renderOverlay(view, renderHelp(m.width, m.tabs.Items()), m.width, m.height)
	}
	return view
}

func (m Model) readout() []string {
	return []string{
		accentStyle(m.root).Inherit(modeTitleStyle).Render(m.modeLabel()),
		durationStyle.Render(fmt.Sprintf("%02d:00", m.session.Minutes())),
		statusLineStyle.Render(statusText(m.session.Status())),
		"",
	}
}

func statusText(status models.TimerStatus) string {
	switch status {
	case models.StatusRunning:
		return "running"
	case models.StatusPaused:
		return "paused"
	default:
		return "ready"
	}
}
