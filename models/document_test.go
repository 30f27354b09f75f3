package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() Document {
	return Document{
		"api": Mapping(Document{
			"port": Int(3000),
			"mongodb": Mapping(Document{
				"host": String("localhost"),
			}),
		}),
		"plugins": Sequence(
			Mapping(Document{"name": String("a")}),
			String("b"),
		),
		"debug": Bool(false),
	}
}

// ── Value ────────────────────────────────────────────────────────────────────

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Equal(t, "null", v.String())
}

func TestValue_Accessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = Int(1).AsString()
	assert.False(t, ok)

	n, ok := Number(1.5).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 1.5, n)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	items, ok := Sequence(Int(1)).AsSequence()
	assert.True(t, ok)
	assert.Len(t, items, 1)

	doc, ok := Mapping(nil).AsMapping()
	assert.True(t, ok)
	assert.NotNil(t, doc)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("x"), "x"},
		{Int(3000), "3000"},
		{Number(1.25), "1.25"},
		{Bool(true), "true"},
		{Null(), "null"},
		{Sequence(Int(1), String("a")), "[1 a]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(1).Equal(Number(1)))
	assert.False(t, Int(1).Equal(String("1")))
	assert.False(t, Sequence(Int(1)).Equal(Sequence(Int(1), Int(2))))
	assert.True(t, Mapping(nil).Equal(Mapping(Document{})))
	assert.True(t, Null().Equal(Value{}))
}

func TestValue_IsLeaf(t *testing.T) {
	assert.True(t, String("").IsLeaf())
	assert.True(t, Sequence().IsLeaf())
	assert.True(t, Mapping(nil).IsLeaf())
	assert.False(t, Sequence(Int(1)).IsLeaf())
	assert.False(t, Mapping(Document{"a": Int(1)}).IsLeaf())
}

func TestValue_CloneIsDeep(t *testing.T) {
	original := Mapping(Document{"list": Sequence(Int(1))})
	clone := original.Clone()

	doc, _ := clone.AsMapping()
	items, _ := doc["list"].AsSequence()
	items[0] = Int(99)

	assert.True(t, original.Equal(Mapping(Document{"list": Sequence(Int(1))})))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "unknown(42)", Kind(42).String())
}

// ── FromAny ──────────────────────────────────────────────────────────────────

func TestFromAny(t *testing.T) {
	when := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"string", "x", String("x")},
		{"int", 3, Int(3)},
		{"uint8", uint8(3), Int(3)},
		{"float32", float32(1.5), Number(1.5)},
		{"bool", true, Bool(true)},
		{"time", when, String("2026-10-01T12:00:00Z")},
		{"slice", []any{1, "a"}, Sequence(Int(1), String("a"))},
		{"map", map[string]any{"a": 1}, Mapping(Document{"a": Int(1)})},
		{"yaml map", map[any]any{"a": 1}, Mapping(Document{"a": Int(1)})},
		{"value", String("v"), String("v")},
		{"document", Document{"a": Int(1)}, Mapping(Document{"a": Int(1)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	for name, in := range map[string]any{
		"struct":         struct{}{},
		"non-string key": map[any]any{1: "a"},
		"nested":         []any{map[string]any{"a": make(chan int)}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromAny(in)
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		})
	}
}

// ── Document ─────────────────────────────────────────────────────────────────

func TestDocument_Lookup(t *testing.T) {
	doc := sample()

	tests := []struct {
		path  string
		want  Value
		found bool
	}{
		{"api.port", Int(3000), true},
		{"api.mongodb.host", String("localhost"), true},
		{"plugins.0.name", String("a"), true},
		{"plugins.1", String("b"), true},
		{"plugins.2", Value{}, false},
		{"plugins.x", Value{}, false},
		{"api.port.deeper", Value{}, false},
		{"missing", Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := doc.Lookup(tt.path)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}

	root, ok := doc.Lookup("")
	require.True(t, ok)
	assert.True(t, Mapping(doc).Equal(root))
}

func TestDocument_LookupDocument(t *testing.T) {
	doc := sample()

	assert.True(t, Document{"host": String("localhost")}.Equal(doc.LookupDocument("api.mongodb")))
	assert.Empty(t, doc.LookupDocument("api.port"))
	assert.Empty(t, doc.LookupDocument("nope"))
	assert.NotNil(t, doc.LookupDocument("nope"))
}

func TestDocument_Replace(t *testing.T) {
	doc := sample()

	assert.True(t, doc.Replace([]string{"api", "port"}, String("4000")))
	assert.True(t, doc.Replace([]string{"plugins", "1"}, String("c")))
	assert.False(t, doc.Replace([]string{"api", "host"}, String("x")))
	assert.False(t, doc.Replace([]string{"plugins", "5"}, String("x")))
	assert.False(t, doc.Replace(nil, String("x")))
	assert.False(t, Document(nil).Replace([]string{"a"}, String("x")))

	v, _ := doc.Lookup("api.port")
	assert.True(t, v.Equal(String("4000")))
	v, _ = doc.Lookup("plugins.1")
	assert.True(t, v.Equal(String("c")))
	_, found := doc.Lookup("api.host")
	assert.False(t, found)
}

func TestDocument_Flatten(t *testing.T) {
	leaves := sample().Flatten()

	paths := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		paths = append(paths, leaf.Path)
	}
	assert.Equal(t, []string{
		"api.mongodb.host",
		"api.port",
		"debug",
		"plugins.0.name",
		"plugins.1",
	}, paths)
	assert.Equal(t, []string{"plugins", "0", "name"}, leaves[3].Segments)
}

func TestDocument_CloneAndEqual(t *testing.T) {
	doc := sample()
	clone := doc.Clone()
	require.True(t, doc.Equal(clone))

	api, _ := clone["api"].AsMapping()
	api["port"] = Int(1)
	assert.False(t, doc.Equal(clone))

	assert.True(t, Document(nil).Equal(Document{}))
	assert.NotNil(t, Document(nil).Clone())
}

// ── Encoding ─────────────────────────────────────────────────────────────────

func TestDocument_JSON(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"api": {"port": 3000, "mongodb": {"host": "localhost"}},
		"plugins": [{"name": "a"}, "b"],
		"debug": false
	}`, string(data))

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, sample().Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &decoded))
}

func TestDocument_YAML(t *testing.T) {
	var decoded Document
	require.NoError(t, yaml.Unmarshal([]byte(`
api:
  port: 3000
  mongodb:
    host: localhost
plugins:
  - name: a
  - b
debug: false
`), &decoded))
	assert.True(t, sample().Equal(decoded), "got %v", decoded)

	data, err := yaml.Marshal(Document{"port": Int(3000), "ratio": Number(0.5)})
	require.NoError(t, err)
	assert.Equal(t, "port: 3000\nratio: 0.5\n", string(data))

	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &decoded))
}
