package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-pleasure-utils/internal/eventbus"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/scan"
)

// TreeWatcher reports changes of any file below a directory. Directories
// created while it runs are watched too. Excluded and skipped directories
// are never watched.
type TreeWatcher struct {
	dir    string
	opts   scan.Options
	bus    *eventbus.Bus
	logger *logger.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

// NewTreeWatcher returns a watcher for the tree below dir. Skip entries
// are made absolute; those containing dir itself are dropped. bus may be
// nil.
func NewTreeWatcher(dir string, opts scan.Options, bus *eventbus.Bus, log *logger.Logger) *TreeWatcher {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	dir = filepath.Clean(dir)

	skip := make([]string, 0, len(opts.Skip))
	for _, s := range opts.Skip {
		if s == "" {
			continue
		}
		if abs, err := filepath.Abs(s); err == nil {
			s = abs
		}
		if scan.Skipped(dir, []string{s}) {
			continue
		}
		skip = append(skip, s)
	}
	opts.Skip = skip

	return &TreeWatcher{
		dir:    dir,
		opts:   opts,
		bus:    bus,
		logger: logger.OrNop(log),
		ready:  make(chan struct{}),
	}
}

// Dir returns the absolute root of the watched tree.
func (w *TreeWatcher) Dir() string {
	return w.dir
}

// Ready is closed once every existing directory is watched.
func (w *TreeWatcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done. It returns nil on cancellation.
func (w *TreeWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	defer fw.Close()

	if err = w.addTree(ctx, fw, w.dir); err != nil {
		return err
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.logger.Info().Str("directory", w.dir).Msg("watching sources")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fw, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("directory", w.dir).Msg("watch error")
		}
	}
}

func (w *TreeWatcher) addTree(ctx context.Context, fw *fsnotify.Watcher, dir string) error {
	dirs, err := scan.Dirs(ctx, dir, w.opts)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWatch, dir, err)
	}
	for _, d := range dirs {
		if err := fw.Add(d); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWatch, d, err)
		}
	}
	return nil
}

func (w *TreeWatcher) handle(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	name, err := filepath.Abs(ev.Name)
	if err != nil || w.ignored(name) {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	if ev.Has(fsnotify.Create) {
		info, err := os.Stat(name)
		if err == nil && info.IsDir() {
			// a directory vanishing before it is added is not an error
			if err := w.addTree(ctx, fw, name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				w.logger.Err(err).Str("directory", name).Msg("watch error")
			}
		}
	}

	w.logger.Debug().Str("path", name).Str("op", ev.Op.String()).Msg("source changed")
	if w.bus != nil {
		w.bus.Emit(eventbus.SourcesChanged, name)
	}
}

func (w *TreeWatcher) ignored(path string) bool {
	if path == w.dir {
		return true
	}
	if scan.Skipped(path, w.opts.Skip) {
		return true
	}
	exclude := w.opts.Exclude
	if exclude == nil {
		exclude = scan.DefaultExclude
	}
	return scan.NewMatcher(exclude).Match(path)
}
