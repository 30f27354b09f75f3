// Package merge implements the deep merge used to combine configuration
// documents.
//
// Mappings are merged key by key, two sequences at the same key are combined
// by a pluggable [ArrayMerge] function and every other combination resolves
// to a deep copy of the source (higher precedence) value. Inputs are never
// mutated; results share no memory with them.
package merge

import (
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// ArrayMerge combines two sequences met at the same key path. dst is the
// lower precedence side. Implementations must not mutate either argument.
type ArrayMerge func(dst, src []models.Value) []models.Value

// Option configures a merge.
type Option func(*options)

type options struct {
	arrayMerge ArrayMerge
}

// WithArrayMerge sets the function used to combine sequences.
// The default is [OverwriteMerge].
func WithArrayMerge(fn ArrayMerge) Option {
	return func(o *options) {
		if fn != nil {
			o.arrayMerge = fn
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{arrayMerge: OverwriteMerge}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Merge returns a new document holding src merged over dst.
func Merge(dst, src models.Document, opts ...Option) models.Document {
	return mergeDocuments(dst, src, newOptions(opts))
}

// All merges docs from left to right starting from an empty document, so that
// later documents take precedence over earlier ones.
func All(docs []models.Document, opts ...Option) models.Document {
	o := newOptions(opts)

	result := models.Document{}
	for _, doc := range docs {
		result = mergeDocuments(result, doc, o)
	}

	return result
}

// Values merges two arbitrary values with the same rules as [Merge].
func Values(dst, src models.Value, opts ...Option) models.Value {
	return mergeValues(dst, src, newOptions(opts))
}

func mergeDocuments(dst, src models.Document, o *options) models.Document {
	out := make(models.Document, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v.Clone()
	}

	for k, sv := range src {
		dv, ok := out[k]
		if !ok {
			out[k] = sv.Clone()
			continue
		}
		out[k] = mergeValues(dv, sv, o)
	}

	return out
}

func mergeValues(dst, src models.Value, o *options) models.Value {
	if dstDoc, ok := dst.AsMapping(); ok {
		if srcDoc, ok := src.AsMapping(); ok {
			return models.Mapping(mergeDocuments(dstDoc, srcDoc, o))
		}
	}

	if dstSeq, ok := dst.AsSequence(); ok {
		if srcSeq, ok := src.AsSequence(); ok {
			merged := o.arrayMerge(dstSeq, srcSeq)
			items := make([]models.Value, len(merged))
			for i, item := range merged {
				items[i] = item.Clone()
			}
			return models.Sequence(items...)
		}
	}

	return src.Clone()
}
