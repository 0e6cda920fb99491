// Package watch reports changes in the displayed directory so the view can refresh it.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/datatug/pathview/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const DefaultDebounce = 200 * time.Millisecond

var ErrAlreadyRunning = errors.New("watcher already running")

var newFSWatcher = fsnotify.NewWatcher

type Option func(w *Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher watches a single directory at a time.
// onChange is called from the watcher goroutine with the directory that changed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  func(dir string)
	debounce  time.Duration
	log       *logrus.Entry

	mutex   sync.Mutex
	dir     string
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func New(onChange func(dir string), o ...Option) (*Watcher, error) {
	fsWatcher, err := newFSWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		debounce:  DefaultDebounce,
		log:       logging.NewLogger("watch"),
	}
	for _, opt := range o {
		opt(w)
	}
	return w, nil
}

// Watch switches the watched directory to dir. An empty dir stops watching.
func (w *Watcher) Watch(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if dir != "" {
		dir = filepath.Clean(dir)
	}
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.log.WithError(err).WithField("dir", w.dir).Debug("failed to remove watch")
		}
		w.dir = ""
	}
	if dir == "" {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.dir = dir
	w.log.WithField("dir", dir).Debug("watching directory")
	return nil
}

func (w *Watcher) Dir() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dir
}

// Start runs the event loop in a goroutine.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return ErrAlreadyRunning
	}
	w.running = true
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	go w.loop(w.stop, w.done)
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var timer *time.Timer
	var timerC <-chan time.Time
	pending := ""

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			dir := w.Dir()
			if dir == "" || filepath.Dir(event.Name) != dir {
				continue
			}
			pending = dir
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			if pending != "" && pending == w.Dir() && w.onChange != nil {
				w.onChange(pending)
			}
			pending = ""
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("fsnotify watcher error")
		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Close stops the event loop and releases the fsnotify watcher.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	running := w.running
	w.running = false
	stop, done := w.stop, w.done
	w.mutex.Unlock()

	if running {
		close(stop)
		<-done
	}
	return w.fsWatcher.Close()
}
