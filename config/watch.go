package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk. Successful reloads
// arrive on Reloads; load or watch failures arrive on Errors.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Reloads chan *Config
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path, since editors often replace
// files instead of writing them in place.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Reloads: make(chan *Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Reloads)
		close(w.Errors)
	})
	return err
}

// run reloads once events for the file have been quiet for reloadDebounce, so a
// save that arrives as several writes is only parsed after the last one.
func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			cfg, err := Load(w.path)
			if err != nil {
				w.send(err)
				continue
			}
			slog.Debug("config reloaded", "path", w.path)
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendConfig replaces any reload the consumer has not picked up yet.
func (w *Watcher) sendConfig(cfg *Config) {
	for {
		select {
		case w.Reloads <- cfg:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Reloads:
		default:
		}
	}
}

func (w *Watcher) send(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
		slog.Warn("dropping config watch error", "error", err)
	}
}
