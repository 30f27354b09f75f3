package resolver

import "github.com/MKhiriev/go-pleasure-utils/models"

// GetOption tunes a single [Resolver.GetConfig] call.
type GetOption func(*getOptions)

type getOptions struct {
	mergeWith     models.Document
	forceReload   bool
	runMiddleware bool
}

func newGetOptions(opts []GetOption) *getOptions {
	o := &getOptions{runMiddleware: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMergeWith layers doc above the loaded configuration and the middleware
// overrides.
func WithMergeWith(doc models.Document) GetOption {
	return func(o *getOptions) {
		o.mergeWith = doc
	}
}

// WithForceReload makes the loader drop its cached copy of the file first.
func WithForceReload() GetOption {
	return func(o *getOptions) {
		o.forceReload = true
	}
}

// WithoutMiddleware skips the registered overrides.
func WithoutMiddleware() GetOption {
	return func(o *getOptions) {
		o.runMiddleware = false
	}
}
