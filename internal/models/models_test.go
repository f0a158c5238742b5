package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimerMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimerMode
		wantErr bool
	}{
		{name: "canonical", input: "pomodoro", want: ModePomodoro},
		{name: "dashes", input: "short-break", want: ModeShortBreak},
		{name: "mixed case and spaces", input: " Long Break ", want: ModeLongBreak},
		{name: "unknown", input: "lunch", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimerMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllModesIsACopy(t *testing.T) {
	modes := AllModes()
	modes[0] = ModeLongBreak
	assert.Equal(t, []TimerMode{ModePomodoro, ModeShortBreak, ModeLongBreak}, AllModes())
}

func TestTimerStatusIsRunning(t *testing.T) {
	assert.True(t, StatusRunning.IsRunning())
	assert.False(t, StatusPaused.IsRunning())
	assert.False(t, StatusIdle.IsRunning())
	assert.False(t, TimerStatus("RUNNING").IsRunning())
}

func TestSettingsTabItems(t *testing.T) {
	s := NewSettings()
	s.Modes.ShortBreak.Label = ""
	s.Modes.LongBreak.Minutes = 20

	items := s.TabItems()
	require.Len(t, items, 3)
	assert.Equal(t, TabItem{Name: ModePomodoro, Label: "Pomodoro", Value: 25}, items[0])
	assert.Equal(t, TabItem{Name: ModeShortBreak, Label: "Short Break", Value: 5}, items[1])
	assert.Equal(t, TabItem{Name: ModeLongBreak, Label: "Long Break", Value: 20}, items[2])
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, NewSettings().Validate())

	badMode := NewSettings()
	badMode.DefaultMode = "nap"
	assert.True(t, errors.Is(badMode.Validate(), ErrInvalidSettings))

	badMinutes := NewSettings()
	badMinutes.Modes.Pomodoro.Minutes = 0
	err := badMinutes.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Contains(t, err.Error(), "modes.pomodoro.minutes")
}
