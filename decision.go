package reagent

// DecisionKind discriminates the two outcomes a step parser can extract from
// oracle output.
type DecisionKind string

const (
	// DecisionToolCall means the oracle requested a tool invocation.
	DecisionToolCall DecisionKind = "tool_call"

	// DecisionFinalAnswer means the oracle declared a final answer; the run
	// is terminal.
	DecisionFinalAnswer DecisionKind = "final_answer"
)

// Decision is one parsed step extracted from oracle output.
//
// Exactly one of the two variants is populated:
//   - Kind == DecisionToolCall: Tool and Input are set
//   - Kind == DecisionFinalAnswer: Answer is set
//
// Log always carries the reasoning text that preceded the decision marker.
type Decision struct {
	Kind DecisionKind

	// Log is the reasoning text preceding the recognized marker.
	Log string

	// Tool is the name of the tool to invoke (tool call only).
	Tool string

	// Input is the text input for the tool (tool call only).
	Input string

	// Answer is the declared final answer (final answer only).
	Answer string
}

// ActionRecord is one completed step of a run: the parsed decision plus, once
// executed, the observation the tool returned. Created by the step parser,
// completed by the loop after dispatch.
type ActionRecord struct {
	// Log is the reasoning text that led to this action.
	Log string

	// Tool is the name of the tool that was invoked.
	Tool string

	// Input is the text input passed to the tool.
	Input string

	// Observation is the text the tool returned.
	Observation string
}
