package merge

import (
	"github.com/MKhiriev/go-pleasure-utils/models"
)

// NameKey is the mapping key used to identify named sequence elements, such
// as plugin entries, during [OverwriteMerge].
const NameKey = "name"

// OverwriteMerge is the sequence policy used for configuration overrides.
//
// When dst is a pair (exactly a number followed by a string, e.g. [5, "kg"])
// it is treated as one atomic value and src replaces it. Otherwise the result
// is src followed by the elements of dst not already present in src. A
// mapping with a "name" key is present when src holds a mapping with an equal
// name; any other element is present when src holds a deep-equal element.
func OverwriteMerge(dst, src []models.Value) []models.Value {
	if isPair(dst) {
		return append([]models.Value(nil), src...)
	}

	out := make([]models.Value, 0, len(src)+len(dst))
	out = append(out, src...)

	for _, elem := range dst {
		if !presentIn(src, elem) {
			out = append(out, elem)
		}
	}

	return out
}

// Replace is an [ArrayMerge] that always keeps the source sequence.
func Replace(_, src []models.Value) []models.Value {
	return append([]models.Value(nil), src...)
}

// Concat is an [ArrayMerge] that appends src to dst without de-duplication.
func Concat(dst, src []models.Value) []models.Value {
	out := make([]models.Value, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}

func isPair(items []models.Value) bool {
	if len(items) != 2 {
		return false
	}
	return items[0].Kind() == models.KindNumber && items[1].Kind() == models.KindString
}

func presentIn(src []models.Value, elem models.Value) bool {
	if name, ok := nameOf(elem); ok {
		for _, candidate := range src {
			if candidateName, ok := nameOf(candidate); ok && candidateName.Equal(name) {
				return true
			}
		}
		return false
	}

	for _, candidate := range src {
		if candidate.Equal(elem) {
			return true
		}
	}
	return false
}

func nameOf(v models.Value) (models.Value, bool) {
	doc, ok := v.AsMapping()
	if !ok {
		return models.Value{}, false
	}
	name, ok := doc[NameKey]
	return name, ok
}
