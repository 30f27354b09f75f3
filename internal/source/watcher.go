package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-pleasure-utils/internal/eventbus"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
)

// Forgetter drops cached copies of a file.
type Forgetter interface {
	Forget(path string)
}

// Watcher reacts to changes of a single configuration file.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file through a rename are noticed, and so that a
// file created after start-up is picked up.
type Watcher struct {
	path   string
	cache  Forgetter
	bus    *eventbus.Bus
	logger *logger.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

// NewWatcher returns a watcher for path. cache and bus may be nil.
func NewWatcher(path string, cache Forgetter, bus *eventbus.Bus, log *logger.Logger) *Watcher {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{
		path:   filepath.Clean(path),
		cache:  cache,
		bus:    bus,
		logger: logger.OrNop(log),
		ready:  make(chan struct{}),
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Ready is closed once the watch is established.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err = fw.Add(dir); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWatch, dir, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.logger.Info().Str("path", w.path).Msg("watching configuration file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("path", w.path).Msg("watch error")
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != w.path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug().Str("path", w.path).Str("op", ev.Op.String()).Msg("configuration file changed")
	if w.cache != nil {
		w.cache.Forget(w.path)
	}
	if w.bus != nil {
		w.bus.Emit(eventbus.ConfigChanged, w.path)
	}
}
