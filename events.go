package reagent

import "time"

// State is the loop driver's state. A run starts in StateRunning, moves to
// StateAwaitingObservation while a tool call is in flight, and ends in exactly
// one of StateFinished or StateFailed.
type State string

const (
	StateRunning             State = "running"
	StateAwaitingObservation State = "awaiting_observation"
	StateFinished            State = "finished"
	StateFailed              State = "failed"
)

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateFinished || s == StateFailed
}

// -----------------------------------------------------------------------------
// Hook Events
// -----------------------------------------------------------------------------

// BeforeRunEvent is emitted once before the first oracle call of a run.
type BeforeRunEvent struct {
	// Input is the user question that seeded the run.
	Input string
}

// AfterRunEvent is emitted once after a run terminates.
// Always emitted if BeforeRunEvent was, even when the run failed.
type AfterRunEvent struct {
	// State is the terminal state, StateFinished or StateFailed.
	State State

	// Output is the final answer (empty on failure).
	Output string

	// Err is the run's error (nil on success).
	Err error

	// Duration is the total wall time of the run.
	Duration time.Duration
}

// AfterOracleCallEvent is emitted after each oracle completion, including
// failed ones.
type AfterOracleCallEvent struct {
	// Iteration is the current iteration number (1-indexed).
	Iteration int

	// Prompt is the full text sent to the oracle.
	Prompt string

	// Response is the oracle's raw output (empty on error).
	Response string

	// Duration is how long the completion took.
	Duration time.Duration

	// Err is the oracle's error, if any.
	Err error
}

// BeforeToolCallEvent is emitted before each tool dispatch.
type BeforeToolCallEvent struct {
	// Iteration is the current iteration number (1-indexed).
	Iteration int

	// State is the loop state while the call is in flight, always
	// StateAwaitingObservation.
	State State

	// Tool is the tool about to be invoked.
	Tool string

	// Input is the text input for the tool.
	Input string
}

// AfterToolCallEvent is emitted after each tool dispatch, including failed
// ones.
type AfterToolCallEvent struct {
	// Iteration is the current iteration number (1-indexed).
	Iteration int

	// Tool is the tool that was invoked.
	Tool string

	// Input is the text input passed to the tool.
	Input string

	// Observation is the tool's output (empty on error).
	Observation string

	// Duration is how long the tool call took.
	Duration time.Duration

	// Err is the tool's error, if any.
	Err error
}

// AfterIterationEvent is emitted after each full loop iteration.
type AfterIterationEvent struct {
	// Iteration is the iteration number that just completed (1-indexed).
	Iteration int

	// State is the loop state after the iteration.
	State State
}

// HookFirer dispatches hook events. The hooks package provides the standard
// implementation ([hooks.Registry]); the Agent only depends on this interface.
//
// Hooks are observational: they never affect control flow, and firing happens
// synchronously on the run's goroutine.
type HookFirer interface {
	FireBeforeRun(event BeforeRunEvent)
	FireAfterRun(event AfterRunEvent)
	FireAfterOracleCall(event AfterOracleCallEvent)
	FireBeforeToolCall(event BeforeToolCallEvent)
	FireAfterToolCall(event AfterToolCallEvent)
	FireAfterIteration(event AfterIterationEvent)
}
