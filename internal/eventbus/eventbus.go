// Package eventbus is a small synchronous publish/subscribe hub used to
// signal configuration reloads and markdown build progress.
//
// A Bus is owned by the composition root and handed to the components that
// publish or listen; there is no package-level instance.
package eventbus

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/utils"
)

// Well-known events.
const (
	// ConfigChanged is emitted with the configuration file path after the
	// file was written, created, removed or renamed.
	ConfigChanged = "config:changed"
	// MarkdownProcessed is emitted with the source and destination paths of
	// every markdown file written by the pre-processor.
	MarkdownProcessed = "md:processed"
	// SourcesChanged is emitted with the path of a file or directory that
	// changed below a watched markdown tree.
	SourcesChanged = "md:changed"
)

// Listener receives the arguments passed to [Bus.Emit].
type Listener func(args ...any)

// IDGenerator issues listener identifiers.
type IDGenerator interface {
	Generate() string
}

type subscription struct {
	id   string
	fn   Listener
	once bool
}

// Bus dispatches events to listeners in subscription order. Listeners run on
// the emitting goroutine. It is safe for concurrent use.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]subscription
	ids       IDGenerator
	logger    *logger.Logger
}

// New returns an empty bus. A nil ids falls back to UUIDv7 identifiers.
func New(ids IDGenerator, log *logger.Logger) *Bus {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	return &Bus{
		listeners: make(map[string][]subscription),
		ids:       ids,
		logger:    logger.OrNop(log),
	}
}

// On subscribes fn to event and returns the subscription id.
func (b *Bus) On(event string, fn Listener) string {
	return b.subscribe(event, fn, false)
}

// Once subscribes fn to the next emission of event only.
func (b *Bus) Once(event string, fn Listener) string {
	return b.subscribe(event, fn, true)
}

// RemoveListener drops the subscription id from event and reports whether
// it existed.
func (b *Bus) RemoveListener(event, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[event]
	idx := slices.IndexFunc(subs, func(s subscription) bool { return s.id == id })
	if idx < 0 {
		return false
	}
	b.listeners[event] = slices.Delete(slices.Clone(subs), idx, idx+1)
	return true
}

// ListenerCount returns the number of subscriptions to event.
func (b *Bus) ListenerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.listeners[event])
}

// Emit calls every listener of event with args and reports whether there was
// any. Listeners subscribed while an emission is running are not called by it.
func (b *Bus) Emit(event string, args ...any) bool {
	b.mu.Lock()
	subs := b.listeners[event]
	if len(subs) == 0 {
		b.mu.Unlock()
		return false
	}
	kept := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if !s.once {
			kept = append(kept, s)
		}
	}
	b.listeners[event] = kept
	b.mu.Unlock()

	b.logger.Debug().Str("event", event).Int("listeners", len(subs)).Msg("emit")
	for _, s := range subs {
		s.fn(args...)
	}
	return true
}

func (b *Bus) subscribe(event string, fn Listener, once bool) string {
	id := b.ids.Generate()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[event] = append(b.listeners[event], subscription{id: id, fn: fn, once: once})
	return id
}
