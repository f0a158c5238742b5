package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/tomatick/internal/config"
	"github.com/watchfire-io/tomatick/internal/theme"
)

func newModesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List timer modes with their colors and icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(flags.configPath)
			if err != nil {
				return err
			}

			root := theme.NewRoot(settings.Appearance.Colors)
			out := cmd.OutOrStdout()
			for _, p := range theme.Table() {
				cfg := settings.Mode(p.Mode)
				resolved := root.Resolve(p.Color)
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(resolved)).Render("  ")

				fmt.Fprintf(out, "  %s %s\n", swatch, styleCommand.Render(cfg.Label))
				fmt.Fprintf(out, "      %s %s\n", styleLabel.Render("Mode    "), styleValue.Render(p.Mode.String()))
				fmt.Fprintf(out, "      %s %s\n", styleLabel.Render("Minutes "), styleValue.Render(fmt.Sprintf("%d", cfg.Minutes)))
				fmt.Fprintf(out, "      %s %s %s\n", styleLabel.Render("Color   "), styleValue.Render(p.Color), styleHint.Render(resolved))
				fmt.Fprintf(out, "      %s %s\n", styleLabel.Render("Icon    "), styleValue.Render(p.Icon))
			}
			return nil
		},
	}
}
