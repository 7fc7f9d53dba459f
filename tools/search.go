// Package tools provides ready-made tools for common agent tasks.
package tools

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/tools/serpapi"

	"github.com/jfellman/reagent"
)

// searchDescription is what the oracle sees when deciding whether to search.
const searchDescription = "A search engine. Useful for when you need to " +
	"answer questions about current events. Input should be a search query."

// Search answers questions about current events by querying the SerpApi
// Google results API.
type Search struct {
	inner *serpapi.Tool
}

// NewSearch creates a Search tool. The SerpApi key is read from the
// SERPAPI_API_KEY environment variable; fails when it is not set.
func NewSearch() (*Search, error) {
	inner, err := serpapi.New()
	if err != nil {
		return nil, err
	}
	return &Search{inner: inner}, nil
}

// Name returns "Search".
func (s *Search) Name() string {
	return "Search"
}

// Description returns the tool description for the LLM.
func (s *Search) Description() string {
	return searchDescription
}

// Call runs the search query and returns the top result snippet.
func (s *Search) Call(ctx context.Context, input string) (string, error) {
	result, err := s.inner.Call(ctx, input)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Compile-time check that Search implements reagent.Tool.
var _ reagent.Tool = (*Search)(nil)
