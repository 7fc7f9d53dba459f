package reagent

import "strings"

// TurnKind identifies what a transcript turn holds.
type TurnKind string

const (
	// TurnQuestion is the user question that seeded the run.
	TurnQuestion TurnKind = "question"

	// TurnReasoning is raw oracle output for one step.
	TurnReasoning TurnKind = "reasoning"

	// TurnAction is a dispatched tool call, rendered as "name: input".
	TurnAction TurnKind = "action"

	// TurnObservation is the text a tool returned.
	TurnObservation TurnKind = "observation"
)

// Turn is one entry in a run's transcript.
type Turn struct {
	Kind TurnKind
	Text string
}

// Transcript is the ordered history of a single run: question, reasoning,
// actions, and observations. It is append-only during the run, owned
// exclusively by one run, and never reordered or mutated retroactively.
type Transcript struct {
	turns []Turn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records a turn at the end of the transcript.
func (t *Transcript) Append(kind TurnKind, text string) {
	t.turns = append(t.turns, Turn{Kind: kind, Text: text})
}

// Turns returns a copy of the recorded turns, preserving order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of recorded turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// String renders the transcript one turn per line as "kind: text", for
// verbose sinks and diagnostics.
func (t *Transcript) String() string {
	var b strings.Builder
	for i, turn := range t.turns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(turn.Kind))
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}
