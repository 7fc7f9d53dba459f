package reagent

import "context"

// Oracle is the external text-completion collaborator. Given a running
// transcript rendered as a prompt, it produces the next reasoning step as free
// text.
//
// Complete is synchronous and may fail (timeout, quota, transport error). Such
// failures are fatal to the current run and surfaced as [OracleError]; the loop
// never retries them. The context is the only cancellation hook for the call,
// which is the one potentially long-running external operation in a run.
//
// See the models package for adapters over langchaingo's llms.Model.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls the function.
func (f OracleFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
