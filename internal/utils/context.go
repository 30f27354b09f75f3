package utils

import (
	"context"
	"slices"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ImportChainCtxKey is the key under which the markdown pre-processor keeps
// the chain of files currently being imported, outermost first.
var ImportChainCtxKey = contextKey("importChain")

// WithImportChain returns a copy of ctx whose import chain is extended by
// path.
func WithImportChain(ctx context.Context, path string) context.Context {
	chain := GetImportChainFromContext(ctx)
	return context.WithValue(ctx, ImportChainCtxKey, append(slices.Clip(chain), path))
}

// GetImportChainFromContext returns the import chain stored in ctx, or nil.
//
// Example usage:
//
//	if slices.Contains(utils.GetImportChainFromContext(ctx), src) {
//	    // src imports itself
//	}
func GetImportChainFromContext(ctx context.Context) []string {
	chain, _ := ctx.Value(ImportChainCtxKey).([]string)
	return chain
}
