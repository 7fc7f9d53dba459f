package reagent

import "context"

// Tool represents a single callable tool: text in, text out.
//
// Responsibility design:
//   - Tool: Accept text input, execute logic, return text output
//   - Registry: Hold tools by name, render the catalog used for prompting
//   - Agent: Parse tool calls from oracle output and dispatch to tools
//
// The method set is deliberately identical to langchaingo's tools.Tool, so any
// tool written for langchaingo satisfies this interface without an adapter.
//
// Tool invocations may have arbitrary external side effects (network calls,
// computation). The loop does not sandbox or retry them; failures propagate to
// the caller wrapped in [ToolError].
type Tool interface {
	// Name returns the tool's identifier used in tool calls.
	// Must be unique within a Registry.
	Name() string

	// Description returns a human-readable description for the LLM.
	// Used only for prompting and tool selection, never for control flow.
	Description() string

	// Call executes the tool with the given text input.
	Call(ctx context.Context, input string) (string, error)
}

// SchemaProvider is optionally implemented by tools whose input is a JSON
// object. When a tool provides a schema, the Registry compiles it at
// registration time and the Agent validates JSON action inputs against it
// before dispatch. Tools with free-text input should not implement this.
type SchemaProvider interface {
	// InputSchema returns the JSON Schema for the tool's input as a raw map,
	// or nil for no validation.
	InputSchema() map[string]any
}

// ToolFunc is a convenience type for creating tools from functions.
type ToolFunc struct {
	name        string
	description string
	fn          func(ctx context.Context, input string) (string, error)
}

// NewToolFunc creates a Tool from a function.
func NewToolFunc(
	name, description string,
	fn func(ctx context.Context, input string) (string, error),
) *ToolFunc {
	return &ToolFunc{
		name:        name,
		description: description,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc) Name() string {
	return t.name
}

// Description returns a human-readable description for the LLM.
func (t *ToolFunc) Description() string {
	return t.description
}

// Call executes the tool function.
func (t *ToolFunc) Call(ctx context.Context, input string) (string, error) {
	return t.fn(ctx, input)
}

// Compile-time check that ToolFunc implements Tool.
var _ Tool = (*ToolFunc)(nil)
