// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver assembles the configuration handed to a caller.
//
// GetConfig loads the project configuration file, takes the subtree of the
// requested scope, layers the registered middleware overrides and the
// caller's own override on top of it, and finally lets environment variables
// replace individual leaves. Precedence, lowest first:
//
//	configuration file < middleware overrides < caller override < environment
package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-pleasure-utils/internal/envsubst"
	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/merge"
	"github.com/MKhiriev/go-pleasure-utils/internal/override"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// Resolver resolves configuration scopes. The zero value is not usable;
// construct one with [NewResolver].
type Resolver struct {
	loader    Loader
	locator   Locator
	registry  *override.Registry
	envPrefix string
	lookup    envsubst.LookupFunc
	logger    *logger.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithEnvPrefix sets the prefix of the environment variables consulted by
// GetConfig. The default is [envsubst.DefaultPrefix].
func WithEnvPrefix(prefix string) Option {
	return func(r *Resolver) {
		if prefix != "" {
			r.envPrefix = prefix
		}
	}
}

// WithLookup replaces the environment lookup, os.LookupEnv by default.
func WithLookup(fn envsubst.LookupFunc) Option {
	return func(r *Resolver) {
		r.lookup = fn
	}
}

// WithRegistry shares an existing override registry. By default every
// resolver owns a fresh one.
func WithRegistry(reg *override.Registry) Option {
	return func(r *Resolver) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// NewResolver builds a resolver reading the file supplied by locator through
// loader.
func NewResolver(loader Loader, locator Locator, log *logger.Logger, opts ...Option) *Resolver {
	log = logger.OrNop(log)
	r := &Resolver{
		loader:    loader,
		locator:   locator,
		envPrefix: envsubst.DefaultPrefix,
		logger:    log,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = override.NewRegistry(log)
	}

	return r
}

// Registry returns the override registry consulted by GetConfig.
func (r *Resolver) Registry() *override.Registry {
	return r.registry
}

// ExtendConfig registers c as a middleware override of scope.
// See [override.Registry.Register].
func (r *Resolver) ExtendConfig(scope string, c override.Contribution) error {
	return r.registry.Register(scope, c)
}

// GetConfig returns a freshly built configuration document for scope;
// [override.RootScope] selects the whole configuration.
//
// A missing configuration file or scope yields an empty base document. Errors
// come from locating or parsing the file and from failing lazy overrides.
func (r *Resolver) GetConfig(scope string, opts ...GetOption) (models.Document, error) {
	o := newGetOptions(opts)

	path, err := r.locator.FindConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocateConfig, err)
	}

	if o.forceReload {
		r.loader.Forget(path)
	}

	loaded, found, err := r.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadConfig, path, err)
	}
	if !found {
		r.logger.Debug().Str("path", path).Msg("configuration file not found, using an empty document")
		loaded = models.Document{}
	}

	middleware := models.Document{}
	if o.runMiddleware {
		middleware, err = r.registry.Resolve(scope)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMiddleware, err)
		}
	}

	merged := merge.All([]models.Document{
		scoped(loaded, scope),
		middleware,
		o.mergeWith,
	}, merge.WithArrayMerge(merge.OverwriteMerge))

	r.logger.Debug().
		Str("scope", scope).
		Str("path", path).
		Bool("found", found).
		Bool("middleware", o.runMiddleware).
		Msg("configuration resolved")

	return envsubst.Apply(merged, r.envPrefix, r.lookup), nil
}

func scoped(doc models.Document, scope string) models.Document {
	if scope == override.RootScope {
		return doc
	}
	return doc.LookupDocument(scope)
}
