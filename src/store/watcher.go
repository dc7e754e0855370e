package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports modifications of a file made by other programs. Writes
// done through the owning Files are acknowledged and never reported.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	changes chan struct{}

	mu    sync.Mutex
	stamp fileStamp

	wg sync.WaitGroup
}

type fileStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func statFile(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// Watch starts watching name. The containing directory is watched rather
// than the file itself so that editors replacing the file by rename are
// noticed too. Only one watcher is attached to f at a time.
func (f *Files) Watch(name string) (*Watcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		changes: make(chan struct{}, 1),
		stamp:   statFile(abs),
	}
	f.watcher = w

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers one notification per burst of external modifications.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. The Changes channel is not closed.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) acknowledge() {
	w.mu.Lock()
	w.acknowledgeLocked()
	w.mu.Unlock()
}

func (w *Watcher) acknowledgeLocked() {
	w.stamp = statFile(w.path)
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&interesting == 0 {
				continue
			}
			if w.refresh() {
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// refresh records the current state of the file and reports whether it
// differs from the last acknowledged one.
func (w *Watcher) refresh() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	cur := statFile(w.path)
	changed := !cur.equal(w.stamp)
	w.stamp = cur
	return changed
}
