package reagent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jfellman/reagent/schema"
)

// Registry holds the tools available to a run, keyed by name.
//
// Register all tools before starting runs. Once runs begin the registry is
// read-only, so concurrent lookups from concurrent runs are safe without
// locking.
type Registry struct {
	order   []string
	tools   map[string]Tool
	schemas map[string]*schema.Schema
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]Tool),
		schemas: make(map[string]*schema.Schema),
	}
}

// Register adds a tool to the registry.
//
// Fails if the tool's name is empty or already registered. If the tool
// implements [SchemaProvider], its input schema is compiled here so invalid
// schemas surface at registration time rather than mid-run.
func (r *Registry) Register(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("cannot register nil tool")
	}
	name := tool.Name()
	if name == "" {
		return fmt.Errorf("cannot register tool with empty name")
	}
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("tool %q already registered", name)
	}

	if sp, ok := tool.(SchemaProvider); ok {
		if raw := sp.InputSchema(); raw != nil {
			compiled, err := schema.Compile(raw)
			if err != nil {
				return fmt.Errorf("tool %q input schema: %w", name, err)
			}
			r.schemas[name] = compiled
		}
	}

	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the tool registered under name, or a [ToolNotFoundError].
func (r *Registry) Lookup(name string) (Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &ToolNotFoundError{Name: name}
	}
	return tool, nil
}

// ValidateInput checks a tool's input against its declared schema, if any.
//
// Validation only applies when the tool declared an input schema and the input
// parses as a JSON object; free-text input passes through untouched. Returns
// nil when the tool is unknown - lookup errors are reported by Lookup, not
// here.
func (r *Registry) ValidateInput(name, input string) error {
	compiled, ok := r.schemas[name]
	if !ok {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		// Not a JSON object; the tool receives the raw text.
		return nil
	}

	return compiled.Validate(data)
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// Prompt renders the "name: description" tool catalog used for prompting.
func (r *Registry) Prompt() string {
	var b strings.Builder
	for i, name := range r.order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.tools[name].Description())
	}
	return b.String()
}
