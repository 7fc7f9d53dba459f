package reagent

import "fmt"

// ToolNotFoundError is returned when a parsed action references a tool that is
// not present in the registry.
type ToolNotFoundError struct {
	// Name is the tool name the action referenced.
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found in registry", e.Name)
}

// ToolError wraps a failure from a tool's Call. The underlying error is
// surfaced unchanged via Unwrap.
type ToolError struct {
	// Name is the tool that failed.
	Name string

	// Err is the tool's error, unchanged.
	Err error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %q failed: %v", e.Name, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ParseError is returned when oracle output does not match the agent type's
// recognized markers, so no next step could be extracted.
type ParseError struct {
	// Output is the raw oracle output that could not be parsed.
	Output string

	// Reason describes what the parser was missing.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse a next step: %s", e.Reason)
}

// OracleError wraps a failure from the completion oracle (timeout, quota,
// transport error). The core never retries; retry policy is the oracle's
// own concern.
type OracleError struct {
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle completion failed: %v", e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

// IterationLimitError is returned when a run exceeds its configured iteration
// ceiling. This is the loop's only safeguard against unbounded execution.
type IterationLimitError struct {
	// Limit is the configured maximum number of iterations.
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("iteration limit exceeded: %d", e.Limit)
}
