// Package tui implements the interactive TUI for Tomatick.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/watchfire-io/tomatick/internal/models"
	"github.com/watchfire-io/tomatick/internal/tray"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// trayActions turns tray menu clicks into program messages.
type trayActions struct {
	program *programRef
}

func (a trayActions) SelectMode(mode models.TimerMode) { a.program.Send(ModeRequestMsg{Mode: mode}) }
func (a trayActions) Toggle()                          { a.program.Send(ToggleRequestMsg{}) }
func (a trayActions) Quit()                            { a.program.Send(QuitRequestMsg{}) }

// Run launches the TUI. With withTray the system tray owns the calling
// goroutine and the program runs beside it; quitting either side stops both.
func Run(ctx context.Context, opts Options, withTray bool) error {
	ref := &programRef{}
	if !withTray {
		return runProgram(ctx, opts, ref)
	}

	items := models.NewSettings().TabItems()
	if opts.Settings != nil {
		items = opts.Settings.TabItems()
	}
	tr := tray.New(ctx, items, trayActions{program: ref})
	opts.Tray = tr

	errCh := make(chan error, 1)
	tr.Run(func() {
		go func() {
			errCh <- runProgram(ctx, opts, ref)
			tr.Quit()
		}()
	}, nil)

	select {
	case err := <-errCh:
		return err
	default:
	}
	// The tray went away on its own; take the program down with it.
	ref.Send(QuitRequestMsg{})
	return <-errCh
}

func runProgram(ctx context.Context, opts Options, ref *programRef) error {
	model := NewModel(ctx, opts, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Store program reference for goroutine sends
	ref.Set(p)

	_, err := p.Run()
	ref.Clear()
	if err != nil {
		pslog.Ctx(ctx).Error("tui exited with error", "err", err)
	}
	return err
}
