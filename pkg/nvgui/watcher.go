package nvgui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/neoview/neoview/pkg/nvgrid"
)

// debounce window for editors that write config files in several steps
const reloadDelay = 200 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands
// the fresh config to a callback. The callback runs on the watcher
// goroutine; callers must marshal back onto the UI thread themselves.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     *nvgrid.Logger
	done    chan struct{}
}

// WatchConfig watches the given config file. The callback fires after
// every successful reload.
func WatchConfig(path string, log *nvgrid.Logger, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	// Watch the directory: editors often replace the file wholesale,
	// which drops a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	w := &Watcher{
		path:    path,
		watcher: fw,
		log:     log,
		done:    make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(*Config)) {
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDelay)
		case <-pending:
			pending = nil
			cfg, err := LoadConfig(w.path)
			if err != nil {
				w.log.WarnCat(nvgrid.CatConfig, "config reload failed: %v", err)
				continue
			}
			w.log.InfoCat(nvgrid.CatConfig, "config reloaded from %s", w.path)
			onReload(cfg)
		case <-w.done:
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
