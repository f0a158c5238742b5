// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global Tomatick directory.
	GlobalDirName = ".tomatick"

	// EnvPrefix prefixes environment overrides, e.g. TOMATICK_DEFAULT_MODE.
	EnvPrefix = "TOMATICK"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "tomatick.log"
)

// GlobalDir returns the path to the global Tomatick directory (~/.tomatick/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogFile returns the path to the log file.
func GlobalLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// SettingsPath returns path, or the global settings file when path is empty.
func SettingsPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return GlobalSettingsFile()
}
