// Package watcher provides watch mode: it observes a target directory for
// new files and triggers an organize run after a quiet period. Runs are
// strictly sequential; a new quiet period only starts counting once the
// previous run has returned.
package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kfenner/tidy/pkg/tidy/logging"
)

// RunFunc is invoked with the watched root after a quiet period of
// filesystem activity.
type RunFunc func(root string) error

// Watcher watches a single directory (non-recursively) and debounces
// filesystem events into organize runs.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	run      RunFunc
	onError  func(error)
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithErrorHandler sets a callback for watch errors and failed runs.
// By default they are dropped.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New creates a Watcher that calls run after debounce of quiet time
// follows filesystem activity.
func New(debounce time.Duration, run RunFunc, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		run:      run,
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch blocks watching root until ctx is cancelled. Only the immediate
// directory is watched; category subdirectories created by the runs are
// never added, so moves performed by a run do not feed back as activity.
func (w *Watcher) Watch(ctx context.Context, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot watch %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch %q: not a directory", root)
	}

	if err := w.fsw.Add(root); err != nil {
		return fmt.Errorf("adding watch on %q: %w", root, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)

		case <-timer.C:
			pending = false
			if err := w.run(root); err != nil {
				w.onError(err)
			}
		}
	}
}

// relevant reports whether an event should count as activity. Events on
// the log artifact are ignored, as is anything that isn't a create, write,
// or rename.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	// Our own runs append to the log artifact; counting those writes as
	// activity would keep the watcher busy forever.
	return !endsWith(ev.Name, logging.FileName)
}

// endsWith reports whether path's base name equals name.
func endsWith(path, name string) bool {
	if len(path) < len(name) {
		return false
	}
	tail := path[len(path)-len(name):]
	if tail != name {
		return false
	}
	return len(path) == len(name) || path[len(path)-len(name)-1] == os.PathSeparator
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
