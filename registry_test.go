package reagent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfellman/reagent/schema"
)

func newTool(name string) *ToolFunc {
	return NewToolFunc(name, "description of "+name,
		func(_ context.Context, input string) (string, error) {
			return "output for " + input, nil
		})
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	tool := newTool("search")

	require.NoError(t, registry.Register(tool))

	got, err := registry.Lookup("search")
	require.NoError(t, err)
	assert.Same(t, tool, got.(*ToolFunc))
}

func TestRegistry_LookupUnregistered(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Lookup("missing")
	require.Error(t, err)

	var notFound *ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *Registry) error
		wantErr string
	}{
		{
			name: "duplicate name",
			setup: func(r *Registry) error {
				if err := r.Register(newTool("search")); err != nil {
					return err
				}
				return r.Register(newTool("search"))
			},
			wantErr: `tool "search" already registered`,
		},
		{
			name: "empty name",
			setup: func(r *Registry) error {
				return r.Register(newTool(""))
			},
			wantErr: "empty name",
		},
		{
			name: "nil tool",
			setup: func(r *Registry) error {
				return r.Register(nil)
			},
			wantErr: "nil tool",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.setup(NewRegistry())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRegistry_NamesAndPrompt(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newTool("alpha")))
	require.NoError(t, registry.Register(newTool("beta")))

	assert.Equal(t, []string{"alpha", "beta"}, registry.Names())
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t,
		"alpha: description of alpha\nbeta: description of beta",
		registry.Prompt())
}

// schemaTool declares a JSON input schema.
type schemaTool struct {
	*ToolFunc
}

func (s *schemaTool) InputSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{
		"query": schema.String("the search query"),
		"limit": schema.Integer("max results"),
	}, "query")
}

func TestRegistry_ValidateInput(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&schemaTool{ToolFunc: newTool("lookup")}))
	require.NoError(t, registry.Register(newTool("plain")))

	tests := []struct {
		name    string
		tool    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid object",
			tool:  "lookup",
			input: `{"query": "go", "limit": 3}`,
		},
		{
			name:    "missing required field",
			tool:    "lookup",
			input:   `{"limit": 3}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			tool:    "lookup",
			input:   `{"query": 42}`,
			wantErr: true,
		},
		{
			name:  "free text passes through",
			tool:  "lookup",
			input: "not json at all",
		},
		{
			name:  "tool without schema",
			tool:  "plain",
			input: `{"anything": true}`,
		},
		{
			name:  "unknown tool is not a validation concern",
			tool:  "missing",
			input: `{}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := registry.ValidateInput(tc.tool, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				var validation *schema.ValidationError
				assert.True(t, errors.As(err, &validation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistry_RejectsInvalidSchemaAtRegistration(t *testing.T) {
	bad := &rawSchemaTool{
		ToolFunc: newTool("bad"),
		schema:   map[string]any{"type": 42},
	}

	err := NewRegistry().Register(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input schema")
}

// rawSchemaTool returns an arbitrary raw schema map.
type rawSchemaTool struct {
	*ToolFunc
	schema map[string]any
}

func (r *rawSchemaTool) InputSchema() map[string]any {
	return r.schema
}
