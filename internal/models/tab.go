package models

// TabItem is one selectable entry of the mode selector.
type TabItem struct {
	Name  TimerMode // unique within a list
	Label string
	Value int // payload for the owner: minutes configured for the mode
}

// TimerStatus is the owner's run state. Only StatusRunning is special to the UI;
// anything else is treated as paused.
type TimerStatus string

const (
	StatusIdle    TimerStatus = "idle"
	StatusRunning TimerStatus = "running"
	StatusPaused  TimerStatus = "paused"
)

// IsRunning reports whether the status is the running state.
func (s TimerStatus) IsRunning() bool {
	return s == StatusRunning
}
