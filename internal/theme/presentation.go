// Package theme holds the per-mode presentation table and the sinks that apply
// it to global chrome: the accent color and the application icon.
package theme

import (
	"errors"
	"fmt"

	"github.com/watchfire-io/tomatick/internal/models"
)

// ErrUnknownMode is returned when a mode has no presentation entry.
var ErrUnknownMode = errors.New("no presentation for timer mode")

// Presentation is the styling metadata of one timer mode.
type Presentation struct {
	Mode  models.TimerMode
	Color string // theme variable reference, resolved through a Root
	Icon  string // icon asset path, resolved through the assets package
}

var presentations = map[models.TimerMode]Presentation{
	models.ModePomodoro: {
		Mode:  models.ModePomodoro,
		Color: "var(--bg-color-1)",
		Icon:  "/favicon-red.svg",
	},
	models.ModeShortBreak: {
		Mode:  models.ModeShortBreak,
		Color: "var(--bg-color-2)",
		Icon:  "/favicon-green.svg",
	},
	models.ModeLongBreak: {
		Mode:  models.ModeLongBreak,
		Color: "var(--bg-color-3)",
		Icon:  "/favicon-blue.svg",
	},
}

// Lookup returns the presentation of mode.
func Lookup(mode models.TimerMode) (Presentation, error) {
	p, ok := presentations[mode]
	if !ok {
		return Presentation{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return p, nil
}

// For returns the presentation of mode and panics if the table has no entry.
// The table is total over models.AllModes, so a miss is a programming error.
func For(mode models.TimerMode) Presentation {
	p, err := Lookup(mode)
	if err != nil {
		panic(err)
	}
	return p
}

// Table returns the presentation entries in mode display order.
func Table() []Presentation {
	modes := models.AllModes()
	table := make([]Presentation, 0, len(modes))
	for _, mode := range modes {
		table = append(table, For(mode))
	}
	return table
}
