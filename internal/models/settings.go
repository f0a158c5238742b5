package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// ModeConfig holds the user-facing configuration of one timer mode.
type ModeConfig struct {
	Label   string `yaml:"label" mapstructure:"label"`
	Minutes int    `yaml:"minutes" mapstructure:"minutes"`
}

// ModesConfig holds the configuration of every timer mode.
type ModesConfig struct {
	Pomodoro   ModeConfig `yaml:"pomodoro" mapstructure:"pomodoro"`
	ShortBreak ModeConfig `yaml:"short_break" mapstructure:"short_break"`
	LongBreak  ModeConfig `yaml:"long_break" mapstructure:"long_break"`
}

// ColorsConfig holds the palette behind the theme variables --bg-color-1..3.
type ColorsConfig struct {
	BgColor1 string `yaml:"bg_color_1" mapstructure:"bg_color_1"`
	BgColor2 string `yaml:"bg_color_2" mapstructure:"bg_color_2"`
	BgColor3 string `yaml:"bg_color_3" mapstructure:"bg_color_3"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Colors ColorsConfig `yaml:"colors" mapstructure:"colors"`
}

// TrayConfig holds system tray settings.
type TrayConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file" mapstructure:"file"`   // empty = ~/.tomatick/tomatick.log
}

// Settings represents global application settings.
// This corresponds to ~/.tomatick/settings.yaml.
type Settings struct {
	Version     int              `yaml:"version" mapstructure:"version"`
	DefaultMode TimerMode        `yaml:"default_mode" mapstructure:"default_mode"`
	Modes       ModesConfig      `yaml:"modes" mapstructure:"modes"`
	Appearance  AppearanceConfig `yaml:"appearance" mapstructure:"appearance"`
	Tray        TrayConfig       `yaml:"tray" mapstructure:"tray"`
	Logging     LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		DefaultMode: ModePomodoro,
		Modes: ModesConfig{
			Pomodoro:   ModeConfig{Label: ModePomodoro.Label(), Minutes: 25},
			ShortBreak: ModeConfig{Label: ModeShortBreak.Label(), Minutes: 5},
			LongBreak:  ModeConfig{Label: ModeLongBreak.Label(), Minutes: 15},
		},
		Appearance: AppearanceConfig{
			Colors: ColorsConfig{
				BgColor1: "#ba4949",
				BgColor2: "#38858a",
				BgColor3: "#397097",
			},
		},
		Tray: TrayConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Mode returns the configuration of a single mode.
func (s *Settings) Mode(mode TimerMode) ModeConfig {
	switch mode {
	case ModeShortBreak:
		return s.Modes.ShortBreak
	case ModeLongBreak:
		return s.Modes.LongBreak
	default:
		return s.Modes.Pomodoro
	}
}

// TabItems returns the selector items in display order.
func (s *Settings) TabItems() []TabItem {
	items := make([]TabItem, 0, len(allModes))
	for _, mode := range allModes {
		cfg := s.Mode(mode)
		label := cfg.Label
		if label == "" {
			label = mode.Label()
		}
		items = append(items, TabItem{Name: mode, Label: label, Value: cfg.Minutes})
	}
	return items
}

// Validate checks that the settings can drive the UI.
func (s *Settings) Validate() error {
	if !s.DefaultMode.Valid() {
		return fmt.Errorf("%w: default_mode %q", ErrInvalidSettings, s.DefaultMode)
	}
	for _, mode := range allModes {
		if s.Mode(mode).Minutes <= 0 {
			return fmt.Errorf("%w: modes.%s.minutes must be positive", ErrInvalidSettings, mode)
		}
	}
	return nil
}
