// Package reload watches the configuration file and the custom themes
// directory while the board is open, and reports edits after a short
// quiet period so one save triggers one reload.
package reload

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/signup/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to one config file and to the YAML files of one
// themes directory.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configFile string
	themesDir  string
	debounce   time.Duration
	logger     *logging.Logger

	onChange func()

	started  bool
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(logger *logging.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New watches the directory of configFile and themesDir. Directories that
// do not exist are skipped. onChange runs on the watcher's goroutine.
func New(configFile, themesDir string, onChange func(), opts ...Option) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:    watcher,
		configFile: filepath.Clean(configFile),
		themesDir:  filepath.Clean(themesDir),
		debounce:   DefaultDebounce,
		logger:     logging.NopLogger(),
		onChange:   onChange,
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch directories, not files: editors replace files on save
	for _, dir := range []string{filepath.Dir(w.configFile), w.themesDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	return w, nil
}

// Start begins watching. It must be called at most once.
func (w *Watcher) Start() {
	w.started = true
	go w.watchLoop()
}

// Stop stops the watcher and waits for its goroutine. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
		if !w.started {
			close(w.done)
		}
	})
	<-w.done
}

// Relevant reports whether an event on path concerns the watcher.
func (w *Watcher) Relevant(path string) bool {
	path = filepath.Clean(path)
	if path == w.configFile {
		return true
	}
	if filepath.Dir(path) != w.themesDir {
		return false
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.Relevant(event.Name) {
				continue
			}
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}
