package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a placement file whenever it changes and delivers
// the full line set for a fresh validation run. The parent directory is
// watched rather than the file itself, so editors that replace the file
// on save keep triggering events.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	lines   chan []string
	errs    chan error
	done    chan struct{}
}

// Watch starts watching the placement file at path. The initial line
// set is delivered immediately.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		lines:   make(chan []string, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}

	go w.run()
	w.reload()

	return w, nil
}

// Lines returns the channel delivering full line sets, one per change.
func (w *Watcher) Lines() <-chan []string {
	return w.lines
}

// Errors returns the channel delivering read and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// run forwards relevant file events as reloads.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

// reload reads the file and delivers its lines, dropping the pending
// set if the consumer has not caught up yet.
func (w *Watcher) reload() {
	lines, err := File(w.path)
	if err != nil {
		w.sendErr(err)
		return
	}

	select {
	case <-w.lines:
	default:
	}
	select {
	case w.lines <- lines:
	case <-w.done:
	}
}

// sendErr delivers an error without blocking.
func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
