package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// settled polls w until it reports something or the deadline passes
func settled(t *testing.T, w *Watcher, within time.Duration) []string {
	t.Helper()
	var names []string
	assert.Eventually(t, func() bool {
		got, err := w.Poll()
		names = append(names, got...)
		return err == nil && len(names) > 0
	}, within, 10*time.Millisecond)
	return names
}

func TestWatcher_ReportsBurstOnceSettled(t *testing.T) {
	dir := t.TempDir()
	room := filepath.Join(dir, "room.yaml")
	write(t, room, "world: {w: 320, h: 180}\n")

	w, err := newWatcher(200*time.Millisecond, dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	write(t, room, "world: {w: 320")
	time.Sleep(20 * time.Millisecond)
	names, err := w.Poll()
	require.NoError(t, err)
	assert.Empty(t, names, "still settling")

	time.Sleep(30 * time.Millisecond)
	write(t, room, "world: {w: 320, h: 180}\ntrees: [{x: 1, y: 1}]\n")

	assert.Equal(t, []string{room}, settled(t, w, 2*time.Second))

	time.Sleep(300 * time.Millisecond)
	names, err = w.Poll()
	require.NoError(t, err)
	assert.Empty(t, names, "one report per burst")
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(20*time.Millisecond, dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	write(t, filepath.Join(dir, "notes.txt"), "x")
	write(t, filepath.Join(dir, "game.json"), "{}")
	grid := filepath.Join(dir, "trees.csv")
	write(t, grid, "0\n")

	assert.Equal(t, []string{grid}, settled(t, w, 2*time.Second))
}

func TestWatcher_CloseDropsPending(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(100*time.Millisecond, dir)
	require.NoError(t, err)

	write(t, filepath.Join(dir, "a.yaml"), "x")
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	time.Sleep(200 * time.Millisecond)
	names, err := w.Poll()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "gone"))
	assert.ErrorContains(t, err, "failed to watch")
}
