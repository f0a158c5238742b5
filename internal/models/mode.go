package models

import (
	"fmt"
	"strings"
)

// TimerMode is one of the fixed timer phases.
type TimerMode string

// Timer modes, in display order.
const (
	ModePomodoro   TimerMode = "pomodoro"
	ModeShortBreak TimerMode = "short_break"
	ModeLongBreak  TimerMode = "long_break"
)

var allModes = []TimerMode{ModePomodoro, ModeShortBreak, ModeLongBreak}

// AllModes returns every timer mode in display order.
func AllModes() []TimerMode {
	return append([]TimerMode(nil), allModes...)
}

// Valid reports whether m is a known timer mode.
func (m TimerMode) Valid() bool {
	switch m {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

func (m TimerMode) String() string {
	return string(m)
}

// Label returns the default human-readable label for the mode.
func (m TimerMode) Label() string {
	switch m {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(m)
	}
}

// ParseTimerMode parses a mode name. Dashes and case are tolerated so
// "Short-Break" and "short_break" resolve to the same mode.
func ParseTimerMode(s string) (TimerMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	mode := TimerMode(normalized)
	if !mode.Valid() {
		return "", fmt.Errorf("unknown timer mode %q (want one of pomodoro, short_break, long_break)", s)
	}
	return mode, nil
}
