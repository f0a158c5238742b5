// Package session owns the authoritative timer mode and run status that the
// UI components observe.
package session

import (
	"github.com/watchfire-io/tomatick/internal/models"
)

// Change describes a single session transition.
type Change struct {
	FromMode   models.TimerMode
	ToMode     models.TimerMode
	FromStatus models.TimerStatus
	ToStatus   models.TimerStatus
}

// Session holds the current mode and status. It is not safe for concurrent
// use; the TUI mutates it only from its update loop.
type Session struct {
	mode    models.TimerMode
	status  models.TimerStatus
	minutes map[models.TimerMode]int

	// OnChange, when set, is called after every transition that changed state.
	OnChange func(Change)
}

// New creates an idle session in the given mode. An invalid mode falls back to
// pomodoro.
func New(mode models.TimerMode, items []models.TabItem) *Session {
	if !mode.Valid() {
		mode = models.ModePomodoro
	}
	s := &Session{
		mode:   mode,
		status: models.StatusIdle,
	}
	s.SetItems(items)
	return s
}

// Mode returns the authoritative timer mode.
func (s *Session) Mode() models.TimerMode {
	return s.mode
}

// Status returns the run status.
func (s *Session) Status() models.TimerStatus {
	return s.status
}

// Minutes returns the configured length of the current mode, or 0 if unknown.
func (s *Session) Minutes() int {
	return s.minutes[s.mode]
}

// SetItems refreshes the per-mode values from the selector items.
func (s *Session) SetItems(items []models.TabItem) {
	s.minutes = make(map[models.TimerMode]int, len(items))
	for _, item := range items {
		s.minutes[item.Name] = item.Value
	}
}

// SetMode switches to mode and stops the session. Invalid modes and the
// current mode are ignored.
func (s *Session) SetMode(mode models.TimerMode) bool {
	if !mode.Valid() || mode == s.mode {
		return false
	}
	s.apply(mode, models.StatusIdle)
	return true
}

// Toggle starts an idle or paused session and pauses a running one.
func (s *Session) Toggle() {
	if s.status.IsRunning() {
		s.apply(s.mode, models.StatusPaused)
		return
	}
	s.apply(s.mode, models.StatusRunning)
}

// Reset returns the session to idle.
func (s *Session) Reset() {
	s.apply(s.mode, models.StatusIdle)
}

func (s *Session) apply(mode models.TimerMode, status models.TimerStatus) {
	change := Change{
		FromMode:   s.mode,
		ToMode:     mode,
		FromStatus: s.status,
		ToStatus:   status,
	}
	s.mode = mode
	s.status = status
	if s.OnChange != nil && (change.FromMode != change.ToMode || change.FromStatus != change.ToStatus) {
		s.OnChange(change)
	}
}
