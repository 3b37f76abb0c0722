package registry

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the source tree must stay quiet before a
// watched rebuild starts.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reruns a full build whenever files under the source roots change.
// Builds run on the watching goroutine, one at a time.
type Watcher struct {
	layout   Layout
	debounce time.Duration
	build    func()
	watcher  *fsnotify.Watcher
}

// NewWatcher watches every directory under the layout's source roots.
// build is called once per quiet period after a relevant change.
func NewWatcher(layout Layout, debounce time.Duration, build func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		layout:   layout,
		debounce: debounce,
		build:    build,
		watcher:  fw,
	}

	if err := w.addDir(layout.SrcDir); err != nil {
		fw.Close()
		return nil, err
	}
	for _, r := range layout.Roots {
		if err := w.addTree(filepath.Join(layout.SrcDir, r)); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run processes events until ctx is done. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err

		case <-timer.C:
			w.build()
		}
	}
}

// relevant reports whether an event should trigger a rebuild. New
// directories are added to the watch list.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if filepath.Dir(event.Name) == filepath.Clean(w.layout.SrcDir) && !slices.Contains(w.layout.Roots, filepath.Base(event.Name)) {
				return false
			}
			_ = w.addTree(event.Name)
			return true
		}
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	return hasExtension(filepath.Base(event.Name), w.layout.Extensions)
}

// addDir watches dir alone so that roots created later are noticed. A
// missing dir is ignored.
func (w *Watcher) addDir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return w.watcher.Add(dir)
}

// addTree watches dir and all directories below it. A missing dir is
// ignored.
func (w *Watcher) addTree(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
