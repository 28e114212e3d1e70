package backend

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/dirnav/internal/logging"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Notifier receives a signal whenever the watched directory changes.
type Notifier interface {
	Notify() bool
}

// DirWatcher follows a single directory and notifies on any change to its
// children. Bursts of changes are throttled to one notification per interval.
type DirWatcher struct {
	fs       *fsnotify.Watcher
	notify   Notifier
	throttle *throttle

	mu  sync.Mutex
	dir string

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewDirWatcher starts a watcher that reports to n.
func NewDirWatcher(n Notifier, interval time.Duration) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create directory watcher: %w", err)
	}
	w := &DirWatcher{
		fs:       fsw,
		notify:   n,
		throttle: newThrottle(interval),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Follow switches the watch to dir, dropping the previous one.
func (w *DirWatcher) Follow(dir string) error {
	dir = filepath.Clean(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fs.Remove(w.dir)
		w.dir = ""
	}
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dir = dir
	events.Watch.Follow(dir)
	return nil
}

// Dir returns the directory currently watched, if any.
func (w *DirWatcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *DirWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *DirWatcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			events.Watch.Change(evt.Name, evt.Op.String())
			if !w.throttle.wait(w.done) {
				return
			}
			w.notify.Notify()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Error(fmt.Errorf("directory watcher: %w", err))
		}
	}
}
