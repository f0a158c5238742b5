// Package watcher reports changes to the settings file so the TUI can reload
// it while running.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"
)

const debounceDelay = 100 * time.Millisecond

// Event reports a settled change to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single file through its parent directory. Editors and
// SaveYAML replace the file by rename, which drops a watch on the file itself.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	logger     pslog.Logger

	debounceMu sync.Mutex
	debounce   *time.Timer
	delay      time.Duration
}

// New creates a watcher for path. The logger is taken from ctx.
func New(ctx context.Context, path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}
	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       abs,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		logger:     pslog.Ctx(ctx).With("component", "watcher"),
		delay:      debounceDelay,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Done is closed once the watcher has been stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Start begins watching. The parent directory must exist.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.logger.Debug("watching settings", "path", w.path)
	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Rename covers atomic writes: tmp file renamed onto the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Clean(event.Name) != w.path {
		return
	}
	w.logger.Debug("fsnotify", "op", event.Op.String(), "path", event.Name)

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	op := event.Op
	w.debounce = time.AfterFunc(w.delay, func() {
		w.emit(Event{Path: w.path, Op: op})
	})
}

func (w *Watcher) emit(ev Event) {
	select {
	case w.eventsChan <- ev:
	case <-w.done:
	}
}
