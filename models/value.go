// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	// KindNull is an explicit null coming from a decoded YAML/JSON source.
	KindNull Kind = iota
	// KindString holds a string scalar.
	KindString
	// KindNumber holds a numeric scalar stored as float64.
	KindNumber
	// KindBool holds a boolean scalar.
	KindBool
	// KindSequence holds an ordered list of values.
	KindSequence
	// KindMapping holds a nested [Document].
	KindMapping
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node of a configuration tree. The zero value is a null.
//
// A Value is immutable from the outside: constructors copy nothing, but every
// merge and resolution operation works on clones, so values stored in a
// registry or a loader cache are never changed by callers.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []Value
	doc  Document
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int is a shorthand for Number(float64(n)).
func Int(n int) Value { return Number(float64(n)) }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Sequence returns a sequence value holding items.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Mapping returns a mapping value wrapping doc. A nil doc becomes an empty mapping.
func Mapping(doc Document) Value {
	if doc == nil {
		doc = Document{}
	}
	return Value{kind: KindMapping, doc: doc}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string and true when v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the number and true when v is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean and true when v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsSequence returns the underlying items and true when v is a sequence.
// The returned slice is shared with v.
func (v Value) AsSequence() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// AsMapping returns the underlying document and true when v is a mapping.
// The returned document is shared with v.
func (v Value) AsMapping() (Document, bool) { return v.doc, v.kind == KindMapping }

// IsLeaf reports whether v is a leaf for flattening purposes: every scalar,
// and empty sequences and mappings.
func (v Value) IsLeaf() bool {
	switch v.kind {
	case KindSequence:
		return len(v.seq) == 0
	case KindMapping:
		return len(v.doc) == 0
	default:
		return true
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, seq: items}
	case KindMapping:
		return Value{kind: KindMapping, doc: v.doc.Clone()}
	default:
		return v
	}
}

// Equal reports deep equality between v and other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.doc.Equal(other.doc)
	}

	return false
}

// ToAny converts v into plain Go values: nil, string, float64 (or int64 when
// the number is integral), bool, []any and map[string]any.
func (v Value) ToAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1<<53 {
			return int64(v.num)
		}
		return v.num
	case KindBool:
		return v.b
	case KindSequence:
		items := make([]any, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.ToAny()
		}
		return items
	case KindMapping:
		return v.doc.ToAny()
	default:
		return nil
	}
}

// String renders scalars as their literal text and containers with fmt's
// default formatting of [Value.ToAny].
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return fmt.Sprint(v.ToAny())
	}
}

// FromAny converts decoded YAML/JSON data into a [Value].
//
// Supported inputs are nil, string, bool, every Go integer and float type,
// []any, map[string]any, map[any]any with string keys, [Value] and [Document].
func FromAny(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x.Clone(), nil
	case Document:
		return Mapping(x.Clone()), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, 0, len(x))
		for i, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case map[string]any:
		doc := make(Document, len(x))
		for k, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			doc[k] = v
		}
		return Mapping(doc), nil
	case map[any]any:
		doc := make(Document, len(x))
		for k, item := range x {
			key, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: mapping key %v (%T)", ErrUnsupportedValue, k, k)
			}
			v, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			doc[key] = v
		}
		return Mapping(doc), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, in)
	}
}

// sortedKeys returns the keys of doc in lexical order.
func sortedKeys(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
