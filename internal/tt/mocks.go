// Package tt provides scripted test doubles for the reasoning loop.
package tt

import (
	"context"
	"fmt"

	"github.com/jfellman/reagent"
)

// -----------------------------------------------------------------------------
// ScriptedOracle - implements reagent.Oracle
// -----------------------------------------------------------------------------

// ScriptedOracle is a configurable oracle that replays queued responses and
// errors in order. Calling past the end of the script fails, so a test that
// over-calls the oracle is caught even when it never checks CallCount.
type ScriptedOracle struct {
	responses  []string
	errors     []error
	callCount  int
	repeatLast bool

	// CapturedPrompts stores the prompt passed to each Complete call.
	// Populated automatically on every call.
	CapturedPrompts []string
}

// NewScriptedOracle creates an empty ScriptedOracle.
func NewScriptedOracle() *ScriptedOracle {
	return &ScriptedOracle{}
}

// AddResponse queues a response for the next call.
func (o *ScriptedOracle) AddResponse(response string) *ScriptedOracle {
	o.responses = append(o.responses, response)
	return o
}

// AddError queues an error for the next call.
func (o *ScriptedOracle) AddError(err error) *ScriptedOracle {
	// Pad so the error lands on the next call slot, after any queued
	// responses.
	for len(o.errors) < len(o.responses) {
		o.errors = append(o.errors, nil)
	}
	o.errors = append(o.errors, err)
	o.responses = append(o.responses, "")
	return o
}

// RepeatLast makes the oracle replay its last queued response once the script
// runs out instead of failing. For tests that over-call on purpose, such as
// driving the loop into its iteration ceiling.
func (o *ScriptedOracle) RepeatLast() *ScriptedOracle {
	o.repeatLast = true
	return o
}

// CallCount returns the number of times Complete has been called.
func (o *ScriptedOracle) CallCount() int {
	return o.callCount
}

// Complete implements reagent.Oracle by replaying the script in order.
// Exhausting the script fails the call unless [ScriptedOracle.RepeatLast] was
// set.
func (o *ScriptedOracle) Complete(_ context.Context, prompt string) (string, error) {
	idx := o.callCount
	o.callCount++

	o.CapturedPrompts = append(o.CapturedPrompts, prompt)

	if idx < len(o.errors) && o.errors[idx] != nil {
		return "", o.errors[idx]
	}
	if idx < len(o.responses) {
		return o.responses[idx], nil
	}
	if o.repeatLast && len(o.responses) > 0 {
		return o.responses[len(o.responses)-1], nil
	}
	return "", fmt.Errorf(
		"scripted oracle exhausted after %d queued responses", len(o.responses))
}

// -----------------------------------------------------------------------------
// Tools - implement reagent.Tool
// -----------------------------------------------------------------------------

// StaticTool returns a fixed output for any input.
type StaticTool struct {
	ToolName   string
	ToolDesc   string
	Output     string
	CalledWith []string
}

// Name returns the configured tool name.
func (t *StaticTool) Name() string { return t.ToolName }

// Description returns the configured description.
func (t *StaticTool) Description() string { return t.ToolDesc }

// Call records the input and returns the fixed output.
func (t *StaticTool) Call(_ context.Context, input string) (string, error) {
	t.CalledWith = append(t.CalledWith, input)
	return t.Output, nil
}

// MapTool maps exact inputs to outputs and fails on anything else.
type MapTool struct {
	ToolName string
	ToolDesc string
	Outputs  map[string]string
}

// Name returns the configured tool name.
func (t *MapTool) Name() string { return t.ToolName }

// Description returns the configured description.
func (t *MapTool) Description() string { return t.ToolDesc }

// Call looks up the input in the output map.
func (t *MapTool) Call(_ context.Context, input string) (string, error) {
	out, ok := t.Outputs[input]
	if !ok {
		return "", fmt.Errorf("no scripted output for input %q", input)
	}
	return out, nil
}

// FailingTool always returns the configured error.
type FailingTool struct {
	ToolName string
	Err      error
}

// Name returns the configured tool name.
func (t *FailingTool) Name() string { return t.ToolName }

// Description describes the failure behavior.
func (t *FailingTool) Description() string { return "always fails" }

// Call returns the configured error.
func (t *FailingTool) Call(_ context.Context, _ string) (string, error) {
	return "", t.Err
}

// Compile-time checks.
var (
	_ reagent.Oracle = (*ScriptedOracle)(nil)
	_ reagent.Tool   = (*StaticTool)(nil)
	_ reagent.Tool   = (*MapTool)(nil)
	_ reagent.Tool   = (*FailingTool)(nil)
)
