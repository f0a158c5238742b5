// Package cli implements the tomatick CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/config"
	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/tui"
	"github.com/watchfire-io/tomatick/internal/watcher"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("tomatick needs an interactive terminal")

// rootFlags holds the persistent and TUI flags.
type rootFlags struct {
	configPath string
	mode       string
	tray       bool
	logFile    string
	logLevel   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "tomatick",
		Short: "A pomodoro timer for the terminal",
		Long: `Tomatick is a pomodoro timer for the terminal.

Switch between Pomodoro, Short Break and Long Break with 1/2/3 or by
clicking the tabs; start and pause with Space. Settings live in
~/.tomatick/settings.yaml and are reloaded while running.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "settings file (default ~/.tomatick/settings.yaml)")
	root.Flags().StringVarP(&flags.mode, "mode", "m", "", "start in this mode (pomodoro, short_break, long_break)")
	root.Flags().BoolVar(&flags.tray, "tray", false, "show the mode icon in the system tray")
	root.Flags().StringVar(&flags.logFile, "log-file", "", "log file (default ~/.tomatick/tomatick.log)")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	// Add subcommands (alphabetical)
	root.AddCommand(newModesCmd(flags))
	root.AddCommand(newSettingsCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with the given context.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// FormatError renders a command error for the terminal.
func FormatError(err error) string {
	return styleError.Render("Error:") + " " + err.Error()
}

// resolveSettings loads settings and applies the command line overrides.
func resolveSettings(cmd *cobra.Command, flags *rootFlags) (*models.Settings, error) {
	settings, err := config.LoadSettings(flags.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("mode") {
		mode, err := models.ParseTimerMode(flags.mode)
		if err != nil {
			return nil, err
		}
		settings.DefaultMode = mode
	}
	if cmd.Flags().Changed("tray") {
		settings.Tray.Enabled = flags.tray
	}
	if cmd.Flags().Changed("log-file") {
		settings.Logging.File = flags.logFile
	}
	if cmd.Flags().Changed("log-level") {
		settings.Logging.Level = flags.logLevel
	}
	return settings, nil
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	settingsPath, err := config.SettingsPath(flags.configPath)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(settings.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := pslog.ContextWithLogger(cmd.Context(), logger)
	restore := redirectStdLog(logger)
	defer restore()

	logger.Info("tomatick starting",
		"settings", settingsPath,
		"mode", settings.DefaultMode.String(),
		"tray", settings.Tray.Enabled)

	w := startWatcher(ctx, settingsPath)
	if w != nil {
		defer w.Stop()
	}

	err = tui.Run(ctx, tui.Options{
		Settings:     settings,
		SettingsPath: settingsPath,
		Watcher:      w,
	}, settings.Tray.Enabled)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("tomatick stopped")
	return nil
}

// startWatcher watches the settings file. Live reload is optional, so
// failures are logged and the TUI runs without it.
func startWatcher(ctx context.Context, path string) *watcher.Watcher {
	logger := pslog.Ctx(ctx)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warn("settings dir unavailable, live reload disabled", "err", err)
		return nil
	}
	w, err := watcher.New(ctx, path)
	if err != nil {
		logger.Warn("watcher unavailable, live reload disabled", "err", err)
		return nil
	}
	if err := w.Start(); err != nil {
		w.Stop()
		logger.Warn("watcher failed to start, live reload disabled", "err", err)
		return nil
	}
	return w
}

// redirectStdLog sends the standard logger (used by systray) through logger
// and returns a func restoring the previous output.
func redirectStdLog(logger pslog.Logger) func() {
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	return func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}
}
