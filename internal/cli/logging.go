package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/config"
	"github.com/watchfire-io/tomatick/internal/models"
)

// loggerOptions maps a settings log level onto pslog options. The TUI owns the
// terminal, so output is always plain structured lines.
func loggerOptions(level string) (pslog.Options, error) {
	opts := pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "", "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return opts, fmt.Errorf("%w: unknown log level %q", models.ErrInvalidSettings, level)
	}
	return opts, nil
}

// newLogger builds a logger writing to w, tagged with a fresh session id.
func newLogger(w io.Writer, level string) (pslog.Logger, error) {
	opts, err := loggerOptions(level)
	if err != nil {
		return nil, err
	}
	return pslog.NewWithOptions(w, opts).With("session_id", uuid.NewString()), nil
}

// openLogger opens the log file named in cfg (default ~/.tomatick/tomatick.log)
// for appending.
func openLogger(cfg models.LoggingConfig) (pslog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		path, err = config.GlobalLogFile()
		if err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger, err := newLogger(f, cfg.Level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
