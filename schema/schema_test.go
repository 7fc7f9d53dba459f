package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_NilPassesThrough(t *testing.T) {
	s, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	// A nil schema validates anything.
	assert.NoError(t, s.Validate(map[string]any{"x": 1}))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile(map[string]any{"type": 42})
	require.Error(t, err)
}

func TestMustCompile_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(map[string]any{"type": 42})
	})
}

func TestSchema_Validate(t *testing.T) {
	s := MustCompile(Object(map[string]*Property{
		"query": String("search query"),
		"limit": Integer("max results"),
		"exact": Boolean("exact match"),
		"boost": Number("score boost"),
	}, "query"))

	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{
			name: "valid full object",
			data: map[string]any{
				"query": "go testing",
				"limit": 5,
				"exact": true,
				"boost": 1.5,
			},
		},
		{
			name: "only required field",
			data: map[string]any{"query": "go"},
		},
		{
			name:    "missing required field",
			data:    map[string]any{"limit": 5},
			wantErr: true,
		},
		{
			name:    "wrong type for string",
			data:    map[string]any{"query": 42},
			wantErr: true,
		},
		{
			name:    "wrong type for integer",
			data:    map[string]any{"query": "go", "limit": "five"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Validate(tc.data)
			if tc.wantErr {
				require.Error(t, err)
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSchema_Raw(t *testing.T) {
	raw := Object(map[string]*Property{
		"name": String("a name"),
	}, "name")

	s := MustCompile(raw)
	assert.Equal(t, raw, s.Raw())

	var nilSchema *Schema
	assert.Nil(t, nilSchema.Raw())
}

func TestObject_Builders(t *testing.T) {
	raw := Object(map[string]*Property{
		"a": String("str"),
		"b": Integer(""),
	}, "a", "b")

	assert.Equal(t, "object", raw["type"])
	assert.Equal(t, []string{"a", "b"}, raw["required"])

	props := raw["properties"].(map[string]any)
	assert.Equal(t,
		map[string]any{"type": "string", "description": "str"},
		props["a"])
	// Empty descriptions are omitted.
	assert.Equal(t, map[string]any{"type": "integer"}, props["b"])
}
