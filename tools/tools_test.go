package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Metadata(t *testing.T) {
	calc := NewCalculator()
	assert.Equal(t, "Calculator", calc.Name())
	assert.Contains(t, calc.Description(), "math")
}

func TestCalculator_Call(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "addition", input: "2 + 2", expected: "4"},
		{name: "whitespace trimmed", input: "  10 - 3  ", expected: "7"},
		{name: "multiplication", input: "6 * 7", expected: "42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calc.Call(context.Background(), tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestNewSearch_RequiresAPIKey(t *testing.T) {
	t.Setenv("SERPAPI_API_KEY", "")

	_, err := NewSearch()
	require.Error(t, err)
}

func TestNewSearch_Metadata(t *testing.T) {
	t.Setenv("SERPAPI_API_KEY", "test-key")

	search, err := NewSearch()
	require.NoError(t, err)
	assert.Equal(t, "Search", search.Name())
	assert.Contains(t, search.Description(), "search engine")
}
