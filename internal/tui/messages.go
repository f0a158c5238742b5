package tui

import "github.com/watchfire-io/tomatick/internal/models"

// ModeRequestMsg asks the session to switch mode. Sent by the tray menu.
type ModeRequestMsg struct {
	Mode models.TimerMode
}

// ToggleRequestMsg asks the session to start or pause. Sent by the tray menu.
type ToggleRequestMsg struct{}

// QuitRequestMsg asks the TUI to exit. Sent by the tray menu.
type QuitRequestMsg struct{}

// SettingsChangedMsg carries freshly loaded settings.
type SettingsChangedMsg struct {
	Settings *models.Settings
}

// settingsFileMsg signals the settings file changed on disk.
type settingsFileMsg struct {
	Path string
}

// watcherClosedMsg signals the settings watcher stopped delivering events.
type watcherClosedMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearNoticeMsg clears the "Settings reloaded" indicator.
type ClearNoticeMsg struct{}
