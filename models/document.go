// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PathSeparator separates segments of a configuration path ("api.mongodb.host").
const PathSeparator = "."

// ErrUnsupportedValue is returned by [FromAny] for inputs that cannot be
// represented as a configuration value.
var ErrUnsupportedValue = errors.New("unsupported configuration value")

// Document is a configuration tree: string keys mapped to [Value] nodes.
// A nil Document behaves as an empty mapping for reads.
type Document map[string]Value

// Leaf is a flattened document entry produced by [Document.Flatten].
type Leaf struct {
	// Path is the dotted path of the leaf; sequence elements use their index
	// as a segment ("plugins.0.name").
	Path string
	// Segments is Path split on [PathSeparator].
	Segments []string
	// Value is the leaf value itself.
	Value Value
}

// DocumentFromAny converts a decoded map into a Document.
func DocumentFromAny(in map[string]any) (Document, error) {
	v, err := FromAny(in)
	if err != nil {
		return nil, err
	}
	doc, _ := v.AsMapping()
	return doc, nil
}

// Clone returns a deep copy of d. The clone of a nil document is an empty one.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports deep equality between d and other. Nil and empty documents
// are equal.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for k, v := range d {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ToAny converts d into a map[string]any tree (see [Value.ToAny]).
func (d Document) ToAny() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v.ToAny()
	}
	return out
}

// Lookup walks path through nested mappings and sequences (numeric segments
// index into sequences). An empty path returns d itself as a mapping.
func (d Document) Lookup(path string) (Value, bool) {
	if path == "" {
		return Mapping(d), true
	}

	current := Mapping(d)
	for _, segment := range strings.Split(path, PathSeparator) {
		next, ok := child(current, segment)
		if !ok {
			return Value{}, false
		}
		current = next
	}

	return current, true
}

// LookupDocument returns the mapping stored at path, or an empty document when
// the path is missing or does not hold a mapping.
func (d Document) LookupDocument(path string) Document {
	v, ok := d.Lookup(path)
	if !ok {
		return Document{}
	}
	doc, ok := v.AsMapping()
	if !ok || doc == nil {
		return Document{}
	}
	return doc
}

// Replace overwrites the existing node addressed by segments with v, in place.
// It never creates missing keys or sequence slots and reports whether the
// node existed.
func (d Document) Replace(segments []string, v Value) bool {
	if len(segments) == 0 || d == nil {
		return false
	}

	parent := Mapping(d)
	for _, segment := range segments[:len(segments)-1] {
		next, ok := child(parent, segment)
		if !ok {
			return false
		}
		parent = next
	}

	last := segments[len(segments)-1]
	switch parent.kind {
	case KindMapping:
		if _, ok := parent.doc[last]; !ok {
			return false
		}
		parent.doc[last] = v
		return true
	case KindSequence:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(parent.seq) {
			return false
		}
		parent.seq[idx] = v
		return true
	default:
		return false
	}
}

// Flatten returns every leaf of d with its dotted path. Mapping keys are
// visited in lexical order so the result is deterministic.
func (d Document) Flatten() []Leaf {
	var leaves []Leaf
	flatten(Mapping(d), nil, &leaves)
	return leaves
}

func flatten(v Value, prefix []string, leaves *[]Leaf) {
	if len(prefix) > 0 && v.IsLeaf() {
		segments := append([]string(nil), prefix...)
		*leaves = append(*leaves, Leaf{
			Path:     strings.Join(segments, PathSeparator),
			Segments: segments,
			Value:    v,
		})
		return
	}

	switch v.kind {
	case KindMapping:
		for _, k := range sortedKeys(v.doc) {
			flatten(v.doc[k], append(prefix, k), leaves)
		}
	case KindSequence:
		for i, item := range v.seq {
			flatten(item, append(prefix, strconv.Itoa(i)), leaves)
		}
	}
}

func child(v Value, segment string) (Value, bool) {
	switch v.kind {
	case KindMapping:
		next, ok := v.doc[segment]
		return next, ok
	case KindSequence:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(v.seq) {
			return Value{}, false
		}
		return v.seq[idx], true
	default:
		return Value{}, false
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. The payload must be an object.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	doc, err := DocumentFromAny(raw)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.ToAny(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a mapping.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	doc, err := DocumentFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = doc
	return nil
}
