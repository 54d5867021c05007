package level

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to level files. It watches the parent directories
// so that editors replacing a file by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	mu    sync.Mutex
	files map[string]bool
}

// NewWatcher watches the given level files.
func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		files:   make(map[string]bool),
	}
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	go watcher.run()
	return watcher, nil
}

// Add starts reporting changes to path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	watched := false
	for f := range w.files {
		if filepath.Dir(f) == dir {
			watched = true
			break
		}
	}
	if !watched {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.files[abs] = true
	return nil
}

func (w *Watcher) tracked(name string) (string, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return abs, w.files[abs]
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			path, ok := w.tracked(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[path]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[path] = now
			select {
			case w.Events <- path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
