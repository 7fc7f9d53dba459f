package hooks

import (
	"fmt"
	"io"
	"time"

	"github.com/jfellman/reagent"
)

// Logger writes a line per lifecycle event to a sink. Useful for watching a
// run from a terminal or capturing it in tests.
//
//	registry := hooks.NewRegistry().Register(hooks.NewLogger(os.Stderr))
//	agent, _ := reagent.Initialize(tools, oracle, agentType,
//	    reagent.WithHooks(registry))
type Logger struct {
	w io.Writer
}

// NewLogger creates a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// OnBeforeRun logs the question that seeds the run.
func (l *Logger) OnBeforeRun(event reagent.BeforeRunEvent) {
	fmt.Fprintf(l.w, "[run] start: %s\n", event.Input)
}

// OnAfterRun logs the terminal state, duration, and answer or error.
func (l *Logger) OnAfterRun(event reagent.AfterRunEvent) {
	if event.Err != nil {
		fmt.Fprintf(l.w, "[run] %s after %s: %v\n",
			event.State, event.Duration.Round(time.Millisecond), event.Err)
		return
	}
	fmt.Fprintf(l.w, "[run] %s after %s: %s\n",
		event.State, event.Duration.Round(time.Millisecond), event.Output)
}

// OnAfterOracleCall logs each completion's iteration, duration, and outcome.
func (l *Logger) OnAfterOracleCall(event reagent.AfterOracleCallEvent) {
	if event.Err != nil {
		fmt.Fprintf(l.w, "[oracle] iteration %d failed after %s: %v\n",
			event.Iteration, event.Duration.Round(time.Millisecond), event.Err)
		return
	}
	fmt.Fprintf(l.w, "[oracle] iteration %d: %d chars in %s\n",
		event.Iteration, len(event.Response), event.Duration.Round(time.Millisecond))
}

// OnAfterIteration logs loop progress. Terminal iterations are skipped, since
// OnAfterRun reports how the run ended.
func (l *Logger) OnAfterIteration(event reagent.AfterIterationEvent) {
	if event.State.Terminal() {
		return
	}
	fmt.Fprintf(l.w, "[loop] iteration %d done\n", event.Iteration)
}

// OnBeforeToolCall logs the tool about to be dispatched.
func (l *Logger) OnBeforeToolCall(event reagent.BeforeToolCallEvent) {
	fmt.Fprintf(l.w, "[tool] %s(%s)\n", event.Tool, event.Input)
}

// OnAfterToolCall logs the observation or the tool's error.
func (l *Logger) OnAfterToolCall(event reagent.AfterToolCallEvent) {
	if event.Err != nil {
		fmt.Fprintf(l.w, "[tool] %s failed after %s: %v\n",
			event.Tool, event.Duration.Round(time.Millisecond), event.Err)
		return
	}
	fmt.Fprintf(l.w, "[tool] %s -> %s\n", event.Tool, event.Observation)
}

