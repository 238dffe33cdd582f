package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// QuietPeriod is how long a file must go without writes before its change
// is reported
const QuietPeriod = 150 * time.Millisecond

// Watcher collects layout and grid files that changed under the watched
// directories. A change is reported once the file has settled, so a burst
// of writes yields one reload of the final content.
type Watcher struct {
	fsw   *fsnotify.Watcher
	quiet time.Duration
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	timers  map[string]*time.Timer
	settled []string
	errs    []error
}

// NewWatcher starts watching dirs
func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(QuietPeriod, dirs...)
}

func newWatcher(quiet time.Duration, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fsw:    fsw,
		quiet:  quiet,
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and drops changes still settling
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()

		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		clear(w.timers)
		w.mu.Unlock()
	})
	return err
}

// Poll returns the files that settled since the last call, without
// blocking, along with any watch errors seen in the meantime
func (w *Watcher) Poll() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	names := w.settled
	w.settled = nil
	err := errors.Join(w.errs...)
	w.errs = nil
	return names, err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !isContentFile(event.Name) {
				continue
			}
			w.touch(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.errs = append(w.errs, err)
			w.mu.Unlock()
		case <-w.done:
			return
		}
	}
}

// touch restarts the quiet period of name
func (w *Watcher) touch(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[name]; ok {
		t.Reset(w.quiet)
		return
	}
	w.timers[name] = time.AfterFunc(w.quiet, func() { w.settle(name) })
}

func (w *Watcher) settle(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}
	delete(w.timers, name)
	if !slices.Contains(w.settled, name) {
		w.settled = append(w.settled, name)
	}
}

func isContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".csv":
		return true
	}
	return false
}

// SceneID maps a changed layout file to its scene id. Grid files map to
// "" since any scene may use them.
func SceneID(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
