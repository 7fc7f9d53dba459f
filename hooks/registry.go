// Package hooks provides the observer registry for run lifecycle events.
//
// Hooks can implement any combination of the hook interfaces; they only
// receive events for the interfaces they implement. Hooks are observational
// and never affect control flow.
package hooks

import "github.com/jfellman/reagent"

// BeforeRunHook is implemented by hooks that want to be notified before the
// first oracle call of a run.
type BeforeRunHook interface {
	OnBeforeRun(event reagent.BeforeRunEvent)
}

// AfterRunHook is implemented by hooks that want to be notified after a run
// terminates. Always called if OnBeforeRun was, even when the run failed.
type AfterRunHook interface {
	OnAfterRun(event reagent.AfterRunEvent)
}

// AfterOracleCallHook is implemented by hooks that want to observe each
// oracle completion, including failed ones.
type AfterOracleCallHook interface {
	OnAfterOracleCall(event reagent.AfterOracleCallEvent)
}

// BeforeToolCallHook is implemented by hooks that want to be notified before
// each tool dispatch.
type BeforeToolCallHook interface {
	OnBeforeToolCall(event reagent.BeforeToolCallEvent)
}

// AfterToolCallHook is implemented by hooks that want to observe each tool
// dispatch, including failed ones.
type AfterToolCallHook interface {
	OnAfterToolCall(event reagent.AfterToolCallEvent)
}

// AfterIterationHook is implemented by hooks that want to be notified after
// each full loop iteration.
type AfterIterationHook interface {
	OnAfterIteration(event reagent.AfterIterationEvent)
}

// Registry stores hooks in registration order and dispatches events to the
// ones implementing the relevant interface. It implements [reagent.HookFirer].
//
// Registry is not safe for concurrent mutation: register all hooks before
// starting runs. Dispatch happens synchronously on the run's goroutine.
type Registry struct {
	hooks []any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make([]any, 0)}
}

// Register adds a hook. The hook can implement any combination of the hook
// interfaces. Hooks are called in registration order. Returns the registry
// for chaining.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireBeforeRun dispatches to all BeforeRunHook implementations.
func (r *Registry) FireBeforeRun(event reagent.BeforeRunEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeRunHook); ok {
			hook.OnBeforeRun(event)
		}
	}
}

// FireAfterRun dispatches to all AfterRunHook implementations.
func (r *Registry) FireAfterRun(event reagent.AfterRunEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterRunHook); ok {
			hook.OnAfterRun(event)
		}
	}
}

// FireAfterOracleCall dispatches to all AfterOracleCallHook implementations.
func (r *Registry) FireAfterOracleCall(event reagent.AfterOracleCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterOracleCallHook); ok {
			hook.OnAfterOracleCall(event)
		}
	}
}

// FireBeforeToolCall dispatches to all BeforeToolCallHook implementations.
func (r *Registry) FireBeforeToolCall(event reagent.BeforeToolCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeToolCallHook); ok {
			hook.OnBeforeToolCall(event)
		}
	}
}

// FireAfterToolCall dispatches to all AfterToolCallHook implementations.
func (r *Registry) FireAfterToolCall(event reagent.AfterToolCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterToolCallHook); ok {
			hook.OnAfterToolCall(event)
		}
	}
}

// FireAfterIteration dispatches to all AfterIterationHook implementations.
func (r *Registry) FireAfterIteration(event reagent.AfterIterationEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterIterationHook); ok {
			hook.OnAfterIteration(event)
		}
	}
}

// Compile-time check that Registry implements reagent.HookFirer.
var _ reagent.HookFirer = (*Registry)(nil)
