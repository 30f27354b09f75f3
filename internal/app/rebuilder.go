package app

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pleasure-utils/internal/eventbus"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
)

// Rebuilder runs a build after every burst of [eventbus.ConfigChanged] and
// [eventbus.SourcesChanged] events. Failed builds are logged and do not
// stop it.
type Rebuilder struct {
	bus      *eventbus.Bus
	build    func(ctx context.Context) error
	debounce time.Duration
	logger   *logger.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

// NewRebuilder returns a rebuilder waiting debounce after the last change
// before calling build.
func NewRebuilder(bus *eventbus.Bus, build func(ctx context.Context) error, debounce time.Duration, log *logger.Logger) *Rebuilder {
	return &Rebuilder{
		bus:      bus,
		build:    build,
		debounce: debounce,
		logger:   logger.OrNop(log),
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the rebuilder listens on the bus.
func (r *Rebuilder) Ready() <-chan struct{} {
	return r.ready
}

// Run implements workers.Worker.
func (r *Rebuilder) Run(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	for _, event := range []string{eventbus.ConfigChanged, eventbus.SourcesChanged} {
		id := r.bus.On(event, func(args ...any) {
			r.logger.Info().Str("event", event).Any("args", args).Msg(MsgChanged)
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		defer r.bus.RemoveListener(event, id)
	}
	r.readyOnce.Do(func() { close(r.ready) })

	timer := time.NewTimer(r.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			timer.Reset(r.debounce)
		case <-timer.C:
			if err := r.build(ctx); err != nil {
				r.logger.Error().Err(err).Msg(MsgRebuildFailed)
				continue
			}
			r.logger.Info().Msg(MsgRebuildDone)
		}
	}
}
