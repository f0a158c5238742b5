package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := New(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	ev := waitEvent(t, w)
	assert.Equal(t, w.Path(), ev.Path)
}

func TestWatcherReportsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))
	w := startWatcher(t, path)

	tmp := filepath.Join(dir, ".settings.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("version: 2\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	ev := waitEvent(t, w)
	assert.Equal(t, w.Path(), ev.Path)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	w := startWatcher(t, path)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))
	}

	waitEvent(t, w)
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(3 * debounceDelay):
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(3 * debounceDelay):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := New(context.Background(), filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	assert.NotPanics(t, w.Stop)
}

func TestWatcherStartFailsWithoutDirectory(t *testing.T) {
	w, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "settings.yaml"))
	require.NoError(t, err)
	defer w.Stop()
	assert.Error(t, w.Start())
}

func TestWatcherDoneClosesOnStop(t *testing.T) {
	w, err := New(context.Background(), filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	select {
	case <-w.Done():
		t.Fatal("done closed before stop")
	default:
	}

	w.Stop()
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed after stop")
	}
}
