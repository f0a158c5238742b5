package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/theme"
)

func testContext() context.Context {
	logger := pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
	return pslog.ContextWithLogger(context.Background(), logger)
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(testContext(), opts, &programRef{})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func primary(m Model) string {
	return m.root.Property(theme.PropPrimaryColor)
}

func TestNewModelMountsPresentation(t *testing.T) {
	settings := models.NewSettings()
	settings.DefaultMode = models.ModeLongBreak
	m := newTestModel(t, Options{Settings: settings})

	assert.Equal(t, models.ModeLongBreak, m.session.Mode())
	assert.Equal(t, models.ModeLongBreak, m.tabs.Active())
	assert.Equal(t, "var(--bg-color-3)", primary(m))
	assert.Equal(t, models.StatusIdle, m.session.Status())
	assert.Equal(t, "start", m.controls.Label())
}

func TestNewModelModeOverride(t *testing.T) {
	m := newTestModel(t, Options{Mode: models.ModeShortBreak})
	assert.Equal(t, models.ModeShortBreak, m.session.Mode())
	assert.Equal(t, "var(--bg-color-2)", primary(m))

	m = newTestModel(t, Options{Mode: "siesta"})
	assert.Equal(t, models.ModePomodoro, m.session.Mode())
}

func TestNumberKeysSelectMode(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := sendCmd(t, m, runes("2"))
	assert.Equal(t, models.ModeShortBreak, m.session.Mode())
	assert.Equal(t, models.ModeShortBreak, m.tabs.Active())
	assert.Equal(t, "var(--bg-color-2)", primary(m))
	assert.NotNil(t, cmd, "mode change retitles the window")

	m = send(t, m, runes("3"))
	assert.Equal(t, models.ModeLongBreak, m.session.Mode())
	assert.Equal(t, "var(--bg-color-3)", primary(m))

	m = send(t, m, runes("1"))
	assert.Equal(t, models.ModePomodoro, m.session.Mode())
	assert.Equal(t, "var(--bg-color-1)", primary(m))
}

func TestArrowKeysCycleModes(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.ModeShortBreak, m.session.Mode())

	m = send(t, m, runes("h"))
	m = send(t, m, runes("h"))
	assert.Equal(t, models.ModeLongBreak, m.session.Mode())
	assert.Equal(t, m.session.Mode(), m.tabs.Active())
}

func TestSameModeKeepsQuiet(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := sendCmd(t, m, runes("1"))
	assert.Nil(t, cmd)
}

func TestToggleAndReset(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, space())
	assert.Equal(t, models.StatusRunning, m.session.Status())
	assert.Equal(t, "pause", m.controls.Label())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.StatusPaused, m.session.Status())
	assert.Equal(t, "start", m.controls.Label())

	m = send(t, m, space())
	m = send(t, m, runes("r"))
	assert.Equal(t, models.StatusIdle, m.session.Status())
	assert.Equal(t, "start", m.controls.Label())
}

func TestModeChangeStopsSession(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, space())
	require.Equal(t, models.StatusRunning, m.session.Status())

	m = send(t, m, runes("2"))
	assert.Equal(t, models.StatusIdle, m.session.Status())
	assert.Equal(t, "start", m.controls.Label())
}

func TestExternalModeRequest(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, ModeRequestMsg{Mode: models.ModeLongBreak})

	assert.Equal(t, models.ModeLongBreak, m.tabs.Active())
	assert.Equal(t, "var(--bg-color-3)", primary(m))
}

func TestExternalToggleRequest(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, ToggleRequestMsg{})
	assert.Equal(t, models.StatusRunning, m.session.Status())
	assert.Equal(t, "pause", m.controls.Label())
}

func TestHeaderClickSelectsTab(t *testing.T) {
	m := newTestModel(t, Options{})
	x := tabsOffset(m.root) + lipgloss.Width(tabStyle.Render("Pomodoro")) + 1

	m = send(t, m, click(x, 0))
	assert.Equal(t, models.ModeShortBreak, m.session.Mode())
	assert.Equal(t, models.ModeShortBreak, m.tabs.Active())

	// The app name is not a tab.
	m = send(t, m, click(2, 0))
	assert.Equal(t, models.ModeShortBreak, m.session.Mode())
}

func TestButtonClickToggles(t *testing.T) {
	m := newTestModel(t, Options{})
	l := m.layout()

	m = send(t, m, click(l.buttonLeft+1, l.buttonTop+1))
	assert.Equal(t, models.StatusRunning, m.session.Status())

	m = send(t, m, click(0, l.buttonTop+1))
	assert.Equal(t, models.StatusRunning, m.session.Status(), "click beside the button")

	m = send(t, m, tea.MouseMsg{X: l.buttonLeft + 1, Y: l.buttonTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, models.StatusRunning, m.session.Status(), "release is not a press")
}

func TestButtonRendersWhereClicksLand(t *testing.T) {
	m := newTestModel(t, Options{})
	l := m.layout()

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Greater(t, len(lines), l.buttonTop+1)
	row := lines[l.buttonTop+1]
	idx := strings.Index(row, "start")
	require.NotEqual(t, -1, idx)
	col := ansi.StringWidth(row[:idx])
	assert.True(t, l.inButton(col, l.buttonTop+1))
	assert.True(t, l.inButton(col+len("start")-1, l.buttonTop+1))
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, runes("?"))
	assert.Equal(t, overlayHelp, m.activeOverlay)
	assert.Contains(t, ansi.Strip(m.View()), "Keyboard Shortcuts")

	m = send(t, m, runes("2"))
	assert.Equal(t, models.ModePomodoro, m.session.Mode(), "overlay captures keys")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyCtrlC}, QuitRequestMsg{}} {
		m := newTestModel(t, Options{})
		_, cmd := sendCmd(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewHeaderShowsEachLabelOnce(t *testing.T) {
	m := newTestModel(t, Options{})
	header := strings.Split(ansi.Strip(m.View()), "\n")[0]

	for _, item := range m.tabs.Items() {
		assert.Equal(t, 1, strings.Count(header, item.Label), item.Label)
	}
	assert.Contains(t, header, appName)
}

func TestViewReadout(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(t, m, runes("3"))
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "15:00")
	assert.Contains(t, view, "ready")
	assert.Contains(t, view, "● Idle")
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	assert.Contains(t, ansi.Strip(m.View()), "Terminal too small")
}

func TestViewFitsTerminal(t *testing.T) {
	for _, size := range [][2]int{{minWidth, minHeight}, {80, 24}, {120, 40}} {
		m := newTestModel(t, Options{})
		m = send(t, m, tea.WindowSizeMsg{Width: size[0], Height: size[1]})

		view := m.View()
		assert.Equal(t, size[1], lipgloss.Height(view), "height at %v", size)
		assert.LessOrEqual(t, lipgloss.Width(view), size[0], "width at %v", size)
	}
}

func TestErrorDisplayAndClear(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := sendCmd(t, m, ErrorMsg{Err: errors.New("settings broken")})
	assert.NotNil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "settings broken")

	m = send(t, m, ClearErrorMsg{})
	assert.NotContains(t, ansi.Strip(m.View()), "settings broken")
}

func TestSettingsChangedAppliesLabelsAndPalette(t *testing.T) {
	m := newTestModel(t, Options{})

	settings := models.NewSettings()
	settings.Modes.Pomodoro = models.ModeConfig{Label: "Focus", Minutes: 50}
	settings.Appearance.Colors.BgColor1 = "#112233"

	m = send(t, m, SettingsChangedMsg{Settings: settings})

	assert.Equal(t, "Focus", m.tabs.Items()[0].Label)
	assert.Equal(t, 50, m.session.Minutes())
	assert.Equal(t, "#112233", m.root.Resolve(primary(m)))
	assert.True(t, m.showReloaded)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "50:00")
	assert.Contains(t, view, "Settings reloaded")

	m = send(t, m, ClearNoticeMsg{})
	assert.False(t, m.showReloaded)
}

func TestReloadSettingsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modes:\n  short_break:\n    minutes: 7\n"), 0o644))

	msg := reloadSettingsCmd(path)()
	changed, ok := msg.(SettingsChangedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 7, changed.Settings.Modes.ShortBreak.Minutes)

	require.NoError(t, os.WriteFile(path, []byte("modes:\n  short_break:\n    minutes: -1\n"), 0o644))
	msg = reloadSettingsCmd(path)()
	assert.IsType(t, ErrorMsg{}, msg)
}

func TestModelsAreIndependent(t *testing.T) {
	a := newTestModel(t, Options{})
	b := newTestModel(t, Options{})

	a = send(t, a, runes("3"))
	a = send(t, a, space())

	assert.Equal(t, models.ModeLongBreak, a.tabs.Active())
	assert.Equal(t, models.ModePomodoro, b.tabs.Active())
	assert.Equal(t, models.StatusIdle, b.session.Status())
	assert.Equal(t, "var(--bg-color-1)", primary(b))
}
