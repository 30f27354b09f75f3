// Package override keeps the per-scope configuration overrides ("middleware")
// that are layered on top of the loaded configuration file.
//
// A [Registry] is owned by the application's composition root. Overrides are
// registered during start-up and resolved on every configuration request:
//
//	reg := override.NewRegistry(log)
//	_ = reg.Register("api", override.Static(models.Document{"port": models.Int(4000)}))
//	doc, err := reg.Resolve("api") // {port: 4000}
//
// Resolving a scope that has no overrides, including the root scope, returns
// the overrides of every registered scope keyed by scope name.
package override

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pleasure-utils/internal/logger"
	"github.com/MKhiriev/go-pleasure-utils/internal/merge"
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// RootScope addresses the whole configuration tree.
const RootScope = ""

// Registry maps scopes to their ordered override contributions.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	scopes map[string][]Contribution
	order  []string
	logger *logger.Logger
}

// NewRegistry returns an empty registry. A nil logger discards diagnostics.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		scopes: make(map[string][]Contribution),
		logger: logger.OrNop(log),
	}
}

// Register appends c to the overrides of scope.
//
// An empty scope or an empty contribution is rejected: the call is logged,
// the registry is left untouched and an error wrapping
// [ErrInvalidRegistration] is returned. Callers that only want the log may
// ignore it.
func (r *Registry) Register(scope string, c Contribution) error {
	var errs []error
	if scope == "" {
		errs = append(errs, ErrEmptyScope)
	}
	if c.IsEmpty() {
		errs = append(errs, ErrEmptyContribution)
	}
	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrInvalidRegistration, errors.Join(errs...))
		r.logger.Error().Err(err).Str("scope", scope).Msg("provide both a scope & replacement")
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scopes[scope]; !ok {
		r.order = append(r.order, scope)
	}
	r.scopes[scope] = append(r.scopes[scope], c)

	r.logger.Debug().Str("scope", scope).Bool("lazy", c.IsLazy()).Msg("override registered")
	return nil
}

// Resolve returns the override document for scope.
//
// When scope has contributions they are merged in registration order with
// [merge.OverwriteMerge]; producers run right before their turn. Otherwise
// the result maps every registered scope name to its own resolved override.
// A failing producer aborts the resolution.
func (r *Registry) Resolve(scope string) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(scope)
}

// Scopes returns the registered scopes in first-registration order.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

func (r *Registry) resolve(scope string) (models.Document, error) {
	contributions := r.scopes[scope]
	if len(contributions) == 0 {
		return r.aggregate()
	}

	result := models.Document{}
	for i, c := range contributions {
		doc, err := c.document()
		if err != nil {
			return nil, fmt.Errorf("%w: scope %q, contribution #%d: %w", ErrProducerFailed, scope, i, err)
		}
		result = merge.Merge(result, doc, merge.WithArrayMerge(merge.OverwriteMerge))
	}

	return result, nil
}

func (r *Registry) aggregate() (models.Document, error) {
	result := make(models.Document, len(r.order))
	for _, name := range r.order {
		if len(r.scopes[name]) == 0 {
			continue
		}
		doc, err := r.resolve(name)
		if err != nil {
			return nil, err
		}
		result[name] = models.Mapping(doc)
	}

	return result, nil
}
