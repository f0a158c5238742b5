package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/watchfire-io/tomatick/internal/models"
)

// LoadSettings loads settings from path (empty = ~/.tomatick/settings.yaml).
// Missing files yield defaults; TOMATICK_* environment variables override
// both, e.g. TOMATICK_MODES_POMODORO_MINUTES=50.
func LoadSettings(path string) (*models.Settings, error) {
	path, err := SettingsPath(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setSettingsDefaults(v, models.NewSettings())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if FileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings %s: %w", path, err)
	}

	mode, err := models.ParseTimerMode(string(settings.DefaultMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSettings, err)
	}
	settings.DefaultMode = mode

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to path (empty = ~/.tomatick/settings.yaml).
func SaveSettings(path string, settings *models.Settings) error {
	path, err := SettingsPath(path)
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

func setSettingsDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("version", d.Version)
	v.SetDefault("default_mode", string(d.DefaultMode))
	v.SetDefault("modes.pomodoro.label", d.Modes.Pomodoro.Label)
	v.SetDefault("modes.pomodoro.minutes", d.Modes.Pomodoro.Minutes)
	v.SetDefault("modes.short_break.label", d.Modes.ShortBreak.Label)
	v.SetDefault("modes.short_break.minutes", d.Modes.ShortBreak.Minutes)
	v.SetDefault("modes.long_break.label", d.Modes.LongBreak.Label)
	v.SetDefault("modes.long_break.minutes", d.Modes.LongBreak.Minutes)
	v.SetDefault("appearance.colors.bg_color_1", d.Appearance.Colors.BgColor1)
	v.SetDefault("appearance.colors.bg_color_2", d.Appearance.Colors.BgColor2)
	v.SetDefault("appearance.colors.bg_color_3", d.Appearance.Colors.BgColor3)
	v.SetDefault("tray.enabled", d.Tray.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}
