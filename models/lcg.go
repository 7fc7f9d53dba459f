// Package models provides oracle adapters over LangChainGo models.
package models

import (
	"context"

	"github.com/tmc/langchaingo/llms"

	"github.com/jfellman/reagent"
)

// DefaultStopWords are the stop sequences applied to every completion unless
// overridden. Generation must stop before the model fabricates its own
// "Observation:" line, since observations come from real tool output.
var DefaultStopWords = []string{"\nObservation:", "\n\tObservation:"}

// LCGWrapper adapts any LangChainGo llms.Model to the [reagent.Oracle]
// interface.
//
// Example usage:
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//	oracle := models.NewLCGWrapper(llm).WithModelName("gpt-4")
type LCGWrapper struct {
	model     llms.Model
	modelName string
	options   []llms.CallOption
}

// NewLCGWrapper creates a new LCGWrapper wrapping the given llms.Model.
// Completions use [DefaultStopWords]; replace with WithCallOptions.
func NewLCGWrapper(model llms.Model) *LCGWrapper {
	return &LCGWrapper{
		model:   model,
		options: []llms.CallOption{llms.WithStopWords(DefaultStopWords)},
	}
}

// WithModelName sets a display name for the wrapped model.
// Returns the wrapper for chaining.
func (m *LCGWrapper) WithModelName(name string) *LCGWrapper {
	m.modelName = name
	return m
}

// WithCallOptions replaces the call options applied to every completion.
// Returns the wrapper for chaining.
func (m *LCGWrapper) WithCallOptions(opts ...llms.CallOption) *LCGWrapper {
	m.options = opts
	return m
}

// ModelName returns the display name set with WithModelName.
func (m *LCGWrapper) ModelName() string {
	return m.modelName
}

// Unwrap returns the underlying llms.Model.
func (m *LCGWrapper) Unwrap() llms.Model {
	return m.model
}

// Complete implements reagent.Oracle by sending the prompt as a single human
// message and returning the first choice's content.
func (m *LCGWrapper) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m.model, prompt, m.options...)
}

// Compile-time check that LCGWrapper implements reagent.Oracle.
var _ reagent.Oracle = (*LCGWrapper)(nil)
