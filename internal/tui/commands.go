package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/tomatick/internal/config"
	"github.com/watchfire-io/tomatick/internal/watcher"
)

// waitSettingsCmd blocks until the watcher reports a change to the settings
// file. The model re-arms it after every event.
func waitSettingsCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-w.Events():
			return settingsFileMsg{Path: ev.Path}
		case <-w.Done():
			return watcherClosedMsg{}
		}
	}
}

func reloadSettingsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		settings, err := config.LoadSettings(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SettingsChangedMsg{Settings: settings}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
